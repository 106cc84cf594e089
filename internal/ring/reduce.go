// Package ring implements the polynomial ring Z_q[X]/(X^N+1) and vectors
// over it that the HIC transform masks a Kyber public key with.
//
// Grounded on original_source/src/reference/{poly,polyvec,reduce}.rs, in the
// coding style of the teacher's own reduce.go/poly.go/polyvec.go (small
// top-level functions, one-line doc comments, no generics).
package ring

import "github.com/esquivel71/chic-pake-go/internal/params"

const q = params.Q

// BarrettReduce computes the centered representative of a congruent to a
// modulo q, in {-(q-1)/2, ..., (q-1)/2}.
func BarrettReduce(a int16) int16 {
	const v = int32(1<<26)/q + 1

	t := v*int32(a) + (1 << 25)
	t >>= 26
	t *= q
	return a - int16(t)
}
