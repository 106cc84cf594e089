package chic

import "errors"

// ErrInvalidInput is returned when a caller-supplied buffer has the wrong
// length for the active parameter set.
var ErrInvalidInput = errors.New("chic: invalid input")
