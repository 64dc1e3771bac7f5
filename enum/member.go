package enum

import (
	"fmt"
	"maps"
	"slices"

	"github.com/zclconf/go-cty/cty"
)

// Constant is implemented by every value an Enum can hold: *Member (and any
// type embedding it) and Record. The unexported bind method keeps the set of
// implementations closed to this package.
type Constant interface {
	Kind() *Kind
	Description() string
	Ordinal() int
	PropName() string
	String() string

	// bind stamps the property name and seals the constant. A nil replacement
	// means the receiver was updated in place.
	bind(propName string) (replacement Constant, err error)
}

// Member is the identity-based member representation. Domain types embed it
// and add their own unexported fields:
//
//	type Weekday struct {
//		enum.Member
//		businessDay bool
//	}
//
// A Member must be created with NewMember and must not be copied after it has
// been handed to an Enum.
type Member struct {
	kind        *Kind
	description string
	ordinal     int
	propName    string
	attrs       map[string]cty.Value
	sealed      bool
}

// NewMember constructs a member of kind. It fails with ErrClosed once the kind
// has been closed by an enumeration. extra may be nil.
func NewMember(kind *Kind, description string, extra map[string]cty.Value) (Member, error) {
	ord, err := kind.next()
	if err != nil {
		return Member{}, err
	}
	return Member{
		kind:        kind,
		description: description,
		ordinal:     ord,
		attrs:       maps.Clone(extra),
	}, nil
}

// MustMember is like NewMember but panics on error. It is intended for
// package-level variable initialization.
func MustMember(kind *Kind, description string, extra map[string]cty.Value) Member {
	m, err := NewMember(kind, description, extra)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Member) Kind() *Kind { return m.kind }
func (m *Member) Description() string { return m.description }
func (m *Member) Ordinal() int { return m.ordinal }

// PropName returns the field name the member was bound to, or "" before closure.
func (m *Member) PropName() string { return m.propName }

// Bound reports whether closure has assigned a property name.
func (m *Member) Bound() bool { return m.propName != "" }

// Sealed reports whether the member rejects writes.
func (m *Member) Sealed() bool { return m.sealed }

// Attr returns an extra field. The zero cty.Value is returned when the field
// does not exist.
func (m *Member) Attr(name string) (cty.Value, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// AttrNames returns the extra field names in sorted order.
func (m *Member) AttrNames() []string {
	return slices.Sorted(maps.Keys(m.attrs))
}

// SetAttr writes an extra field. It fails with ErrFrozen once the member has
// been sealed by closure.
func (m *Member) SetAttr(name string, v cty.Value) error {
	if m.sealed {
		return fmt.Errorf("%w: cannot set %q on %s", ErrFrozen, name, m)
	}
	if m.attrs == nil {
		m.attrs = make(map[string]cty.Value)
	}
	m.attrs[name] = v
	return nil
}

// String returns "Kind.PROP". Before closure the property name is unknown and
// the placeholder "Kind.<unbound #ordinal>" is rendered instead.
func (m *Member) String() string {
	if m.propName == "" {
		return fmt.Sprintf("%s.<unbound #%d>", m.kindName(), m.ordinal)
	}
	return m.kindName() + "." + m.propName
}

func (m *Member) kindName() string {
	if m.kind == nil {
		return "?"
	}
	return m.kind.name
}

func (m *Member) bind(propName string) (Constant, error) {
	if m == nil || m.kind == nil {
		return nil, fmt.Errorf("enum: field %q holds a member that was not built with NewMember", propName)
	}
	if m.sealed {
		return nil, fmt.Errorf("%w: %s is already bound", ErrFrozen, m)
	}
	m.propName = propName
	m.sealed = true
	return nil, nil
}
