package symmetric

import "golang.org/x/crypto/sha3"

// PRF generates outLen bytes of SHAKE256 output over key ∥ nonce, mirroring
// the teacher's kex.go use of sha3.NewShake256() to derive transcript keys.
func PRF(outLen int, key [32]byte, nonce byte) []byte {
	xof := sha3.NewShake256()
	xof.Write(key[:])
	xof.Write([]byte{nonce})

	out := make([]byte, outLen)
	xof.Read(out)
	return out
}
