package kem

import (
	"io"

	"github.com/cloudflare/circl/kem/kyber/kyber512"
)

// kyber512KEM is the Kyber-512-width sibling of kyber768KEM; same circl
// family, same wrapper shape.
type kyber512KEM struct{}

// Keypair implements KEM.
func (kyber512KEM) Keypair(rng io.Reader) ([]byte, []byte, error) {
	pk, sk, err := kyber512.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}

	pkBytes := make([]byte, kyber512.PublicKeySize)
	pk.Pack(pkBytes)

	skBytes := make([]byte, kyber512.PrivateKeySize)
	sk.Pack(skBytes)

	return pkBytes, skBytes, nil
}

// Encapsulate implements KEM.
func (kyber512KEM) Encapsulate(pkBytes []byte, rng io.Reader) ([]byte, []byte, error) {
	if len(pkBytes) != kyber512.PublicKeySize {
		return nil, nil, ErrInvalidKeySize
	}

	var pk kyber512.PublicKey
	pk.Unpack(pkBytes)

	seed := make([]byte, kyber512.EncapsulationSeedSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}

	ct := make([]byte, kyber512.CiphertextSize)
	ss := make([]byte, kyber512.SharedKeySize)
	pk.EncapsulateTo(ct, ss, seed)

	return ct, ss, nil
}

// Decapsulate implements KEM.
func (kyber512KEM) Decapsulate(ct, skBytes []byte) ([]byte, error) {
	if len(skBytes) != kyber512.PrivateKeySize {
		return nil, ErrInvalidKeySize
	}
	if len(ct) != kyber512.CiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}

	var sk kyber512.PrivateKey
	sk.Unpack(skBytes)

	ss := make([]byte, kyber512.SharedKeySize)
	sk.DecapsulateTo(ss, ct)
	return ss, nil
}
