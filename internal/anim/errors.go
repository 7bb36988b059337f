package anim

import "errors"

var (
	// ErrInvalidConfig indicates an animation configuration rejected before
	// the first frame.
	ErrInvalidConfig = errors.New("anim: invalid configuration")

	// ErrOutput indicates a frame could not be written. The run stops.
	ErrOutput = errors.New("anim: output unavailable")
)
