package enum

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrClosed is returned when a member or an enumeration is constructed for
	// a Kind that has already completed closure.
	ErrClosed = errors.New("enum: kind is closed to new instances")
	// ErrDuplicateName is returned when an enumeration name is already registered.
	ErrDuplicateName = errors.New("enum: duplicate enumeration name")
	// ErrDuplicateDescription is returned when two members of one enumeration
	// share a description.
	ErrDuplicateDescription = errors.New("enum: duplicate member description")
	// ErrFrozen is returned on any write to a sealed member or a closed enumeration.
	ErrFrozen = errors.New("enum: value is frozen")
)

// DuplicateDescriptionError reports the fields of an enumeration that share
// a description.
type DuplicateDescriptionError struct {
	Enumeration string
	Description string
	Fields      []string
}

// Error implements the error interface.
func (e *DuplicateDescriptionError) Error() string {
	return fmt.Sprintf("enumeration %q: description %q is used by %s",
		e.Enumeration, e.Description, strings.Join(e.Fields, ", "))
}

// Unwrap lets errors.Is match ErrDuplicateDescription.
func (e *DuplicateDescriptionError) Unwrap() error {
	return ErrDuplicateDescription
}
