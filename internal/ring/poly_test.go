package ring

import (
	"testing"

	"github.com/esquivel71/chic-pake-go/internal/params"
	"github.com/stretchr/testify/require"
)

func TestPolySerializationRoundTrip(t *testing.T) {
	require := require.New(t)

	var p Poly
	p.Coeffs[0] = q - 1
	p.Coeffs[1] = -(q - 1) / 2
	p.Coeffs[2] = 0
	p.Coeffs[3] = 1
	for i := 4; i < params.N; i++ {
		p.Coeffs[i] = int16((i*37 + 1) % q)
	}
	p.Reduce()

	buf := make([]byte, params.N*12/8)
	p.ToBytes(buf)

	var got Poly
	got.FromBytes(buf)
	got.Reduce()

	require.Equal(p.Coeffs, got.Coeffs)
}

func TestBarrettReduceCentered(t *testing.T) {
	require := require.New(t)

	for a := int16(-2 * q); a < 2*q; a += 7 {
		r := BarrettReduce(a)
		require.LessOrEqual(int(r), (q-1)/2)
		require.GreaterOrEqual(int(r), -(q-1)/2)

		diff := int(a) - int(r)
		require.Zero(diff % q)
	}
}
