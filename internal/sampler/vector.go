// Package sampler rejection-samples uniform polynomial vectors from a seed,
// the masking term HIC adds to a Kyber public key's polynomial part.
package sampler

import (
	"github.com/esquivel71/chic-pake-go/internal/params"
	"github.com/esquivel71/chic-pake-go/internal/ring"
	"github.com/esquivel71/chic-pake-go/internal/symmetric"
)

// q12Mask keeps the low 12 bits of a candidate: Q fits in 12 bits, unlike
// the teacher's 13-bit q=7681 scheme in genMatrix.
const q12Mask = 0x0fff

// GenVector derives a uniform Polyvec of width k from seed, domain-separating
// each of the k rows by absorbing (byte(i), 0) after the seed — mirroring the
// teacher's genMatrix, specialized from a KxK matrix to a single K-wide
// vector.
func GenVector(seed []byte, k int) ring.Polyvec {
	v := ring.New(k)

	xof := symmetric.NewXOF()
	const maxBlocks = 4
	backing := make([]byte, symmetric.BlockBytes*maxBlocks)

	for i := 0; i < k; i++ {
		buf := backing[:symmetric.BlockBytes*maxBlocks]
		xof.Absorb(seed, byte(i), 0)
		xof.SqueezeBlocks(buf, maxBlocks)

		ctr := 0
		pos := 0
		for ctr < params.N {
			for pos+3 <= len(buf) && ctr < params.N {
				ctr = rejUniform(buf, pos, ctr, v.Vec[i].Coeffs[:])
				pos += 3
			}
			if ctr < params.N {
				// buflen mod 3 may leave 1-2 trailing bytes that don't form
				// a full pair of candidates; carry them to the front and
				// top the buffer back up, as the teacher's genMatrix does
				// with its own squeeze-more-on-exhaustion loop.
				rem := len(buf) - pos
				copy(buf[:rem], buf[pos:])
				xof.SqueezeBlocks(buf[rem:], 1)
				pos = 0
				buf = buf[:rem+symmetric.BlockBytes]
			}
		}
	}

	return v
}

// rejUniform extracts up to two 12-bit candidates from buf[pos:pos+3],
// writing accepted ones (< Q, lifted to centered representation) starting at
// coeffs[ctr]. It returns the updated coefficient count.
func rejUniform(buf []byte, pos, ctr int, coeffs []int16) int {
	d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0x0f) << 8)
	d2 := (uint16(buf[pos+1]) >> 4) | (uint16(buf[pos+2]) << 4)

	if d1 < params.Q && ctr < params.N {
		coeffs[ctr] = center(d1)
		ctr++
	}
	if d2 < params.Q && ctr < params.N {
		coeffs[ctr] = center(d2)
		ctr++
	}
	return ctr
}

// center maps an unsigned candidate in [0, Q) to the signed centered
// representative in (-Q/2, Q/2], per original_source's reference ring.
func center(x uint16) int16 {
	v := int16(x & q12Mask)
	if v > (params.Q-1)/2 {
		v -= params.Q
	}
	return v
}
