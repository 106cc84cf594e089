package ring

import (
	"testing"

	"github.com/esquivel71/chic-pake-go/internal/params"
	"github.com/stretchr/testify/require"
)

func TestPolyvecAddSubRoundTrip(t *testing.T) {
	require := require.New(t)

	const k = 3
	a := New(k)
	b := New(k)
	for i := 0; i < k; i++ {
		for j := 0; j < params.N; j++ {
			a.Vec[i].Coeffs[j] = int16((i*params.N + j) % q)
			b.Vec[i].Coeffs[j] = int16((2*i*params.N + 3*j + 5) % q)
		}
	}

	var sum, recovered Polyvec
	sum = New(k)
	sum.Add(&a, &b)
	sum.Reduce()

	recovered = New(k)
	recovered.Sub(&sum, &b)
	recovered.Reduce()

	aReduced := New(k)
	aReduced.Add(&a, &Polyvec{Vec: make([]Poly, k)})
	aReduced.Reduce()

	require.Equal(aReduced.Vec, recovered.Vec)
}

func TestPolyvecSerializationRoundTrip(t *testing.T) {
	require := require.New(t)

	const k = 2
	v := New(k)
	for i := 0; i < k; i++ {
		for j := 0; j < params.N; j++ {
			v.Vec[i].Coeffs[j] = int16((i*7 + j*13) % q)
		}
	}
	v.Reduce()

	buf := make([]byte, k*params.N*12/8)
	v.ToBytes(buf)

	got := New(k)
	got.FromBytes(buf)
	got.Reduce()

	require.Equal(v.Vec, got.Vec)
}
