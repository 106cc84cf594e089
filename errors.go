package chic

import "errors"

var (
	// ErrInvalidInput is returned when a caller-supplied buffer (password,
	// session id, message) has the wrong length for the active parameter
	// set.
	ErrInvalidInput = errors.New("chic: invalid input")

	// ErrKEM is returned when the underlying KEM fails keypair generation,
	// encapsulation, or decapsulation.
	ErrKEM = errors.New("chic: KEM operation failed")

	// ErrOther covers internal failures not otherwise classified.
	ErrOther = errors.New("chic: internal error")
)

// HICError reports a failure inside the HIC transform. Practically
// unreachable: HIC cannot fail on well-formed, correctly-sized input.
type HICError struct {
	Reason string
}

func (e *HICError) Error() string { return "chic: hic failure: " + e.Reason }
