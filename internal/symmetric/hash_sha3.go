//go:build !sha2

package symmetric

import "golang.org/x/crypto/sha3"

// HashName identifies which hash binding this build was compiled with.
const HashName = "SHA3"

// H collapses input to a 32-byte digest. This build binds H to SHA3-256.
func H(input []byte) [32]byte {
	return sha3.Sum256(input)
}

// G collapses input to a 64-byte digest. This build binds G to SHA3-512.
func G(input []byte) [64]byte {
	return sha3.Sum512(input)
}
