package anim

import (
	"errors"
	"fmt"
)

// Domain errors for frame generation.
var (
	// ErrInvalidSpec indicates a generator spec with non-positive dimensions, frames or delay.
	ErrInvalidSpec = errors.New("anim: invalid generator spec")

	// ErrSizeMismatch indicates a rendered frame whose bounds differ from the spec.
	ErrSizeMismatch = errors.New("anim: frame size does not match spec")

	// ErrNoFrames indicates an export was requested for an empty sequence.
	ErrNoFrames = errors.New("anim: no frames to export")

	// ErrUnknownGenerator indicates a lookup for a name that is not registered.
	ErrUnknownGenerator = errors.New("anim: unknown generator")

	// ErrCanceled indicates the run was interrupted between frames.
	ErrCanceled = errors.New("anim: run canceled by context")
)

// FrameError wraps an error with the frame that produced it.
type FrameError struct {
	Generator string
	Frame     int
	Wrapped   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("%s frame %d: %v", e.Generator, e.Frame, e.Wrapped)
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
