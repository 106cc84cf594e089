package chic

import "github.com/esquivel71/chic-pake-go/internal/params"

// Params selects a Kyber parameter set, fixing the module-LWE vector width
// and the derived wire sizes of public keys, secret keys, and ciphertexts.
type Params = params.Set

var (
	// ParamsKyber512 aims for security equivalent to AES-128.
	ParamsKyber512 = params.Kyber512

	// ParamsKyber768 aims for security equivalent to AES-192. This is the
	// parameter set most callers should start with.
	ParamsKyber768 = params.Kyber768

	// ParamsKyber1024 aims for security equivalent to AES-256.
	ParamsKyber1024 = params.Kyber1024
)
