package kem

import "errors"

// ErrInvalidKeySize is returned when a packed key buffer does not match the
// binding's expected size, mirroring the teacher's ErrInvalidKeySize in
// kem.go.
var ErrInvalidKeySize = errors.New("kem: invalid key size")

// ErrInvalidCiphertextSize is returned when a ciphertext buffer does not
// match the binding's expected size.
var ErrInvalidCiphertextSize = errors.New("kem: invalid ciphertext size")
