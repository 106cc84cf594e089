package kem

import (
	"io"

	"github.com/cloudflare/circl/kem/kyber/kyber768"
)

// kyber768KEM is the built-in default binding, wrapping circl's Kyber-768
// implementation the way the teacher's own kem.go wraps its round-2 Kyber
// into GenerateKeyPair/KEMEncrypt/KEMDecrypt.
type kyber768KEM struct{}

// Default returns the built-in Kyber-768 binding used when a caller does not
// inject its own KEM.
func Default() KEM { return kyber768KEM{} }

// Keypair implements KEM.
func (kyber768KEM) Keypair(rng io.Reader) ([]byte, []byte, error) {
	pk, sk, err := kyber768.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}

	pkBytes := make([]byte, kyber768.PublicKeySize)
	pk.Pack(pkBytes)

	skBytes := make([]byte, kyber768.PrivateKeySize)
	sk.Pack(skBytes)

	return pkBytes, skBytes, nil
}

// Encapsulate implements KEM.
func (kyber768KEM) Encapsulate(pkBytes []byte, rng io.Reader) ([]byte, []byte, error) {
	if len(pkBytes) != kyber768.PublicKeySize {
		return nil, nil, ErrInvalidKeySize
	}

	var pk kyber768.PublicKey
	pk.Unpack(pkBytes)

	seed := make([]byte, kyber768.EncapsulationSeedSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}

	ct := make([]byte, kyber768.CiphertextSize)
	ss := make([]byte, kyber768.SharedKeySize)
	pk.EncapsulateTo(ct, ss, seed)

	return ct, ss, nil
}

// Decapsulate implements KEM.
func (kyber768KEM) Decapsulate(ct, skBytes []byte) ([]byte, error) {
	if len(skBytes) != kyber768.PrivateKeySize {
		return nil, ErrInvalidKeySize
	}
	if len(ct) != kyber768.CiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}

	var sk kyber768.PrivateKey
	sk.Unpack(skBytes)

	ss := make([]byte, kyber768.SharedKeySize)
	sk.DecapsulateTo(ss, ct)
	return ss, nil
}
