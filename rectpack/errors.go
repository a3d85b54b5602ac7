package rectpack

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnpackable is matched by every *UnpackableError.
	ErrUnpackable = errors.New("unpackable rectangle")
)

// InvalidInputError reports a malformed rectangle or bin constraint. ID is
// empty when the problem is not tied to a single rectangle.
type InvalidInputError struct {
	ID     string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input: %q: %s", e.ID, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// UnpackableError reports a rectangle wider than the bin.
type UnpackableError struct {
	ID       string
	Width    int
	MaxWidth int
}

func (e *UnpackableError) Error() string {
	return fmt.Sprintf("rectangle %q is %d wide and cannot fit a bin %d wide", e.ID, e.Width, e.MaxWidth)
}

func (e *UnpackableError) Is(target error) bool {
	return target == ErrUnpackable
}

func invalid(id, format string, args ...any) error {
	return &InvalidInputError{ID: id, Reason: fmt.Sprintf(format, args...)}
}
