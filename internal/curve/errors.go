package curve

import "errors"

// Domain errors for shape construction.
var (
	// ErrInvalidParams indicates a wrong parameter count or a parameter
	// outside the range the family can evaluate.
	ErrInvalidParams = errors.New("curve: invalid parameters")

	// ErrUnknownFamily indicates a curve family name that is not registered.
	ErrUnknownFamily = errors.New("curve: unknown family")
)
