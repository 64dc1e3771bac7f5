package enum

import (
	"errors"
	"fmt"
	"sync"
)

// Kind is an explicit tag for one member subtype or one enumeration subtype.
// It counts constructions and, once closed, rejects any further ones.
type Kind struct {
	name string

	mu     sync.Mutex
	count  int
	closed bool
	owner  string
}

// NewKind creates an open Kind. The name is used when rendering members,
// e.g. "Color" yields "Color.RED".
func NewKind(name string) *Kind {
	return &Kind{name: name}
}

// Name returns the display name of the kind.
func (k *Kind) Name() string {
	return k.name
}

// Count returns how many instances have been constructed for the kind.
func (k *Kind) Count() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.count
}

// Closed reports whether the kind rejects new instances.
func (k *Kind) Closed() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.closed
}

// Owner returns the name of the enumeration that closed the kind, or "" while
// the kind is open.
func (k *Kind) Owner() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.owner
}

func (k *Kind) String() string {
	return k.name
}

// checkOpen fails with ErrClosed once the kind has been closed.
func (k *Kind) checkOpen() error {
	if k == nil {
		return errors.New("enum: nil kind")
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.openLocked()
}

func (k *Kind) openLocked() error {
	if k.closed {
		return fmt.Errorf("%w: %s (closed by %q)", ErrClosed, k.name, k.owner)
	}
	return nil
}

// next reserves the next ordinal.
func (k *Kind) next() (int, error) {
	if k == nil {
		return 0, errors.New("enum: nil kind")
	}
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.openLocked(); err != nil {
		return 0, err
	}
	ord := k.count
	k.count++
	return ord, nil
}

// claim closes the kind for owner, failing with ErrClosed when it is
// already closed.
func (k *Kind) claim(owner string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	if err := k.openLocked(); err != nil {
		return err
	}
	k.closed = true
	k.owner = owner
	return nil
}

// release reopens a kind claimed by owner whose closure could not be
// published.
func (k *Kind) release(owner string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed && k.owner == owner {
		k.closed = false
		k.owner = ""
	}
}

// close marks the kind as closed. Closing an already closed kind keeps the
// first owner.
func (k *Kind) close(owner string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.closed {
		return
	}
	k.closed = true
	k.owner = owner
}
