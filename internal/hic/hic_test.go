package hic

import (
	"bytes"
	"testing"

	"github.com/esquivel71/chic-pake-go/internal/params"
	"github.com/esquivel71/chic-pake-go/internal/ring"
	"github.com/stretchr/testify/require"
)

func randBytes(n int, seed byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = seed + byte(i)
	}
	return b
}

func TestHicBijection(t *testing.T) {
	require := require.New(t)

	for _, p := range []*params.Set{params.Kyber512, params.Kyber768, params.Kyber1024} {
		pk := randBytes(p.PublicKeyBytes(), 0x11)
		// A Kyber public key encodes every coefficient in [0, q); bring the
		// patterned bytes into that form so pk is a well-formed input.
		v := ring.New(p.K())
		v.FromBytes(pk[:p.PolyVecBytes()])
		v.Reduce()
		v.ToBytes(pk[:p.PolyVecBytes()])
		pw := randBytes(params.SymBytes, 0x22)
		sid := randBytes(params.SymBytes, 0x33)

		icc := Eval(p, pk, pw, sid)
		require.Len(icc, p.PublicKeyBytes())

		recovered := Inv(p, icc, pw, sid)
		require.True(bytes.Equal(recovered, pk), "%s: hic_inv(hic_eval(pk)) != pk", p.Name())
	}
}

func TestHicEvalLooksNothingLikeInput(t *testing.T) {
	require := require.New(t)

	p := params.Kyber768
	pk := randBytes(p.PublicKeyBytes(), 0x00)
	pw := randBytes(params.SymBytes, 0x22)
	sid := randBytes(params.SymBytes, 0x33)

	icc := Eval(p, pk, pw, sid)
	require.False(bytes.Equal(icc, pk))
}

func TestHicInvWithWrongPasswordDoesNotRecoverOriginal(t *testing.T) {
	require := require.New(t)

	p := params.Kyber768
	pk := randBytes(p.PublicKeyBytes(), 0x44)
	pw := randBytes(params.SymBytes, 0x55)
	wrongPw := randBytes(params.SymBytes, 0x56)
	sid := randBytes(params.SymBytes, 0x66)

	icc := Eval(p, pk, pw, sid)
	recovered := Inv(p, icc, wrongPw, sid)
	require.False(bytes.Equal(recovered, pk))
}

func TestHicEvalIsDeterministic(t *testing.T) {
	require := require.New(t)

	p := params.Kyber768
	pk := randBytes(p.PublicKeyBytes(), 0x77)
	pw := randBytes(params.SymBytes, 0x88)
	sid := randBytes(params.SymBytes, 0x99)

	icc1 := Eval(p, pk, pw, sid)
	icc2 := Eval(p, pk, pw, sid)
	require.True(bytes.Equal(icc1, icc2))
}

func TestHicEvalDiffersAcrossSid(t *testing.T) {
	require := require.New(t)

	p := params.Kyber768
	pk := randBytes(p.PublicKeyBytes(), 0xaa)
	pw := randBytes(params.SymBytes, 0xbb)
	sidA := randBytes(params.SymBytes, 0xcc)
	sidB := randBytes(params.SymBytes, 0xcd)

	iccA := Eval(p, pk, pw, sidA)
	iccB := Eval(p, pk, pw, sidB)
	require.False(bytes.Equal(iccA, iccB))
}
