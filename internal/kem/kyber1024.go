package kem

import (
	"io"

	"github.com/cloudflare/circl/kem/kyber/kyber1024"
)

// kyber1024KEM is the Kyber-1024-width sibling of kyber768KEM; same circl
// family, same wrapper shape.
type kyber1024KEM struct{}

// Keypair implements KEM.
func (kyber1024KEM) Keypair(rng io.Reader) ([]byte, []byte, error) {
	pk, sk, err := kyber1024.GenerateKeyPair(rng)
	if err != nil {
		return nil, nil, err
	}

	pkBytes := make([]byte, kyber1024.PublicKeySize)
	pk.Pack(pkBytes)

	skBytes := make([]byte, kyber1024.PrivateKeySize)
	sk.Pack(skBytes)

	return pkBytes, skBytes, nil
}

// Encapsulate implements KEM.
func (kyber1024KEM) Encapsulate(pkBytes []byte, rng io.Reader) ([]byte, []byte, error) {
	if len(pkBytes) != kyber1024.PublicKeySize {
		return nil, nil, ErrInvalidKeySize
	}

	var pk kyber1024.PublicKey
	pk.Unpack(pkBytes)

	seed := make([]byte, kyber1024.EncapsulationSeedSize)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, nil, err
	}

	ct := make([]byte, kyber1024.CiphertextSize)
	ss := make([]byte, kyber1024.SharedKeySize)
	pk.EncapsulateTo(ct, ss, seed)

	return ct, ss, nil
}

// Decapsulate implements KEM.
func (kyber1024KEM) Decapsulate(ct, skBytes []byte) ([]byte, error) {
	if len(skBytes) != kyber1024.PrivateKeySize {
		return nil, ErrInvalidKeySize
	}
	if len(ct) != kyber1024.CiphertextSize {
		return nil, ErrInvalidCiphertextSize
	}

	var sk kyber1024.PrivateKey
	sk.Unpack(skBytes)

	ss := make([]byte, kyber1024.SharedKeySize)
	sk.DecapsulateTo(ss, ct)
	return ss, nil
}
