//go:build sha2

package symmetric

import (
	"crypto/sha256"
	"crypto/sha512"
)

// HashName identifies which hash binding this build was compiled with.
const HashName = "SHA2"

// H collapses input to a 32-byte digest. This build binds H to SHA-256.
func H(input []byte) [32]byte {
	return sha256.Sum256(input)
}

// G collapses input to a 64-byte digest. This build binds G to SHA-512.
func G(input []byte) [64]byte {
	return sha512.Sum512(input)
}
