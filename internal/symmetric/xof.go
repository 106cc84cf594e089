package symmetric

import "golang.org/x/crypto/sha3"

// BlockBytes is the SHAKE128 rate in bytes, the granularity gen_vector
// squeezes in.
const BlockBytes = 168

// XOF is a domain-separated SHAKE128 instance, mirroring the teacher's
// genMatrix seed-expansion shape in indcpa.go (an extended seed of
// SymBytes+2 bytes, absorbed once, then squeezed in BlockBytes chunks).
type XOF struct {
	state sha3.ShakeHash
}

// NewXOF creates a fresh, unabsorbed XOF instance.
func NewXOF() *XOF {
	return &XOF{state: sha3.NewShake128()}
}

// Absorb resets the instance and absorbs seed followed by the two
// domain-separation bytes x, y.
func (s *XOF) Absorb(seed []byte, x, y byte) {
	s.state.Reset()
	s.state.Write(seed)
	s.state.Write([]byte{x, y})
}

// SqueezeBlocks fills out with nblocks*BlockBytes bytes of output. May be
// called repeatedly to keep squeezing from the same absorbed state.
func (s *XOF) SqueezeBlocks(out []byte, nblocks int) {
	s.state.Read(out[:nblocks*BlockBytes])
}
