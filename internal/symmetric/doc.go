// Package symmetric implements the hash, XOF, PRF, and constant-time
// comparison/copy primitives the CHIC/HIC construction is built from.
//
// Grounded on the teacher's (Yawning/kyber) use of golang.org/x/crypto/sha3
// in kem.go/kex.go (sha3.Sum256, sha3.Sum512, sha3.NewShake256) and on
// crypto/subtle in kem.go's Fujisaki-Okamoto re-encryption check
// (subtle.ConstantTimeSelect, subtle.ConstantTimeCopy).
package symmetric
