package kem

import (
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultKeypairEncapsulateDecapsulateRoundTrip(t *testing.T) {
	require := require.New(t)

	k := Default()

	pk, sk, err := k.Keypair(rand.Reader)
	require.NoError(err)
	require.NotEmpty(pk)
	require.NotEmpty(sk)

	ct, ss1, err := k.Encapsulate(pk, rand.Reader)
	require.NoError(err)

	ss2, err := k.Decapsulate(ct, sk)
	require.NoError(err)

	require.True(bytes.Equal(ss1, ss2))
}

func TestDefaultEncapsulateRejectsBadPublicKeySize(t *testing.T) {
	require := require.New(t)

	k := Default()
	_, _, err := k.Encapsulate(make([]byte, 3), rand.Reader)
	require.ErrorIs(err, ErrInvalidKeySize)
}

func TestDefaultDecapsulateRejectsBadSizes(t *testing.T) {
	require := require.New(t)

	k := Default()
	_, sk, err := k.Keypair(rand.Reader)
	require.NoError(err)

	_, err = k.Decapsulate(make([]byte, 5), sk)
	require.ErrorIs(err, ErrInvalidCiphertextSize)

	ct, _, err := k.Encapsulate(mustPublicKey(t, k), rand.Reader)
	require.NoError(err)
	_, err = k.Decapsulate(ct, make([]byte, 5))
	require.ErrorIs(err, ErrInvalidKeySize)
}

func mustPublicKey(t *testing.T, k KEM) []byte {
	t.Helper()
	pk, _, err := k.Keypair(rand.Reader)
	require.NoError(t, err)
	return pk
}

func TestFuncKEMFallsBackToDefault(t *testing.T) {
	require := require.New(t)

	f := FuncKEM{}
	pk, sk, err := f.Keypair(rand.Reader)
	require.NoError(err)

	ct, ss1, err := f.Encapsulate(pk, rand.Reader)
	require.NoError(err)

	ss2, err := f.Decapsulate(ct, sk)
	require.NoError(err)
	require.True(bytes.Equal(ss1, ss2))
}

func TestFuncKEMUsesInjectedClosures(t *testing.T) {
	require := require.New(t)

	var called bool
	f := FuncKEM{
		KeypairFn: func(rng io.Reader) ([]byte, []byte, error) {
			called = true
			return Default().Keypair(rng)
		},
	}

	pk, sk, err := f.Keypair(rand.Reader)
	require.NoError(err)
	require.NotEmpty(pk)
	require.NotEmpty(sk)
	require.True(called)
}
