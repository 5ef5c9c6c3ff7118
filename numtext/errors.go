package numtext

import "errors"

// Sentinel errors returned by conversion functions. Errors carry context
// about the offending input and wrap one of these; test with errors.Is.
var (
	// ErrInvalidInput indicates a negative, non-integral or otherwise
	// unrecognisable value.
	ErrInvalidInput = errors.New("numtext: invalid input")

	// ErrOutOfRange indicates a value at or above 10^18.
	ErrOutOfRange = errors.New("numtext: out of range")

	// ErrNotImplemented indicates a conversion direction that is not supported.
	ErrNotImplemented = errors.New("numtext: not implemented")
)
