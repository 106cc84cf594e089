// Package kem defines the KEM capability CHIC treats as an external
// collaborator (spec §9's design note), plus a default binding to
// Kyber-768.
package kem

import "io"

// KEM is the three-operation capability CHIC's protocol messages are built
// over. A caller may supply its own binding (to a hardware HSM, a different
// Kyber parameter set, or a different PQC KEM entirely); Default returns the
// built-in Kyber-768 binding.
//
// Modeled as an interface rather than a struct of optional closures — Go has
// no Option<closure> idiom, and an interface lets a caller hand in a single
// value instead of three, matching the teacher's own preference for
// stateful key-exchange types (kex.go's UAKEInitiatorState) over bare
// function values.
type KEM interface {
	// Keypair generates a fresh public/secret key pair, consuming randomness
	// from rng.
	Keypair(rng io.Reader) (pk, sk []byte, err error)

	// Encapsulate derives a shared secret under pk, consuming randomness
	// from rng, and returns the ciphertext to send alongside it.
	Encapsulate(pk []byte, rng io.Reader) (ct, ss []byte, err error)

	// Decapsulate recovers the shared secret ct was encapsulated with under
	// the owner of sk.
	Decapsulate(ct, sk []byte) (ss []byte, err error)
}

// KeypairFunc, EncapsulateFunc, and DecapsulateFunc mirror KEM's methods as
// plain function types, for FuncKEM.
type (
	KeypairFunc     func(rng io.Reader) (pk, sk []byte, err error)
	EncapsulateFunc func(pk []byte, rng io.Reader) (ct, ss []byte, err error)
	DecapsulateFunc func(ct, sk []byte) (ss []byte, err error)
)

// FuncKEM adapts three standalone functions into a KEM, for callers who
// would rather pass closures than implement an interface. Any nil field
// falls back to the corresponding method of Default().
type FuncKEM struct {
	KeypairFn     KeypairFunc
	EncapsulateFn EncapsulateFunc
	DecapsulateFn DecapsulateFunc
}

// Keypair implements KEM.
func (f FuncKEM) Keypair(rng io.Reader) ([]byte, []byte, error) {
	if f.KeypairFn == nil {
		return Default().Keypair(rng)
	}
	return f.KeypairFn(rng)
}

// Encapsulate implements KEM.
func (f FuncKEM) Encapsulate(pk []byte, rng io.Reader) ([]byte, []byte, error) {
	if f.EncapsulateFn == nil {
		return Default().Encapsulate(pk, rng)
	}
	return f.EncapsulateFn(pk, rng)
}

// Decapsulate implements KEM.
func (f FuncKEM) Decapsulate(ct, sk []byte) ([]byte, error) {
	if f.DecapsulateFn == nil {
		return Default().Decapsulate(ct, sk)
	}
	return f.DecapsulateFn(ct, sk)
}
