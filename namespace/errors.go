package namespace

import (
	"errors"
	"fmt"
)

var (
	// ErrNotExtendable is returned when a segment cannot be descended into without force mode.
	ErrNotExtendable = errors.New("namespace: segment is not an extendable own property")
	// ErrNotWalkable is returned when a segment holds an extendable value that cannot hold properties.
	ErrNotWalkable = errors.New("namespace: segment holds a value that cannot hold properties")
	// ErrInvalidBase is returned when the supplied base is extendable but cannot hold properties.
	ErrInvalidBase = errors.New("namespace: base cannot hold properties")
)

// Error identifies the segment that stopped resolution and the full attempted path.
type Error struct {
	Segment string
	Path    string
	Err     error
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrNotWalkable) {
		return fmt.Sprintf("namespace: unable to descend into %q of %q, its value cannot hold properties", e.Segment, e.Path)
	}
	return fmt.Sprintf("namespace: unable to access %q of %q without force mode, must be a truthy object and an own property", e.Segment, e.Path)
}

func (e *Error) Unwrap() error {
	if e.Err == nil {
		return ErrNotExtendable
	}
	return e.Err
}
