package nurbsgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPoint is returned when a set operation is given a nil or
	// empty coordinate tuple.
	ErrEmptyPoint = errors.New("control point must have at least one coordinate")
)

// ErrInvalidSize indicates a non-positive control point count for a
// parametric dimension at construction.
type ErrInvalidSize struct {
	Dim  int // Parametric dimension index (0-based)
	Size int // Rejected size
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size for parametric dimension %d: %d", e.Dim, e.Size)
}

// ErrInvalidArity indicates an unsupported number of parametric dimensions.
// Managers address one (curve), two (surface), or three (volume) dimensions.
type ErrInvalidArity struct {
	Arity int // Rejected number of parametric dimensions
}

func (e *ErrInvalidArity) Error() string {
	return fmt.Sprintf("arity must be between 1 and 3, got %d", e.Arity)
}

// ErrIndexOutOfRange indicates a write or linear access targeting an
// offset outside the current storage bounds.
type ErrIndexOutOfRange struct {
	Index int // Rejected linear offset
	Len   int // Current storage length
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d is out of range [0, %d)", e.Index, e.Len)
}
