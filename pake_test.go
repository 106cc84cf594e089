package chic

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedPw(b byte) [32]byte {
	var pw [32]byte
	for i := range pw {
		pw[i] = b
	}
	return pw
}

func TestPakeHappyPath(t *testing.T) {
	require := require.New(t)

	pw := fixedPw(0x7a)

	encPK, pk, sk, err := PakeInitStart(ParamsKyber768, pw, rand.Reader, nil)
	require.NoError(err)

	env, err := ParseEncPK(ParamsKyber768, encPK)
	require.NoError(err)

	msg2, respKey, respTag, err := PakeResp(ParamsKyber768, env.Sid, env.Msg1, pw, rand.Reader, nil)
	require.NoError(err)

	initKey, initTag, status, err := PakeInitEnd(ParamsKyber768, msg2, env.Sid[:], encPK, pk, sk, nil)
	require.NoError(err)

	require.Equal(byte(0), status)
	require.True(bytes.Equal(respKey, initKey))
	require.True(bytes.Equal(respTag, initTag))
}

func TestPakeWrongPasswordRejectsSilently(t *testing.T) {
	require := require.New(t)

	pw := fixedPw(0x01)
	wrongPw := fixedPw(0x02)

	encPK, pk, sk, err := PakeInitStart(ParamsKyber768, pw, rand.Reader, nil)
	require.NoError(err)

	env, err := ParseEncPK(ParamsKyber768, encPK)
	require.NoError(err)

	msg2, _, _, err := PakeResp(ParamsKyber768, env.Sid, env.Msg1, wrongPw, rand.Reader, nil)
	require.NoError(err)

	key, _, status, err := PakeInitEnd(ParamsKyber768, msg2, env.Sid[:], encPK, pk, sk, nil)
	require.NoError(err)

	require.NotEqual(byte(0), status)
	require.True(bytes.Equal(key, make([]byte, 32)))
}

func TestPakeInitEndRejectsSidMismatch(t *testing.T) {
	require := require.New(t)

	pw := fixedPw(0x09)

	encPK, pk, sk, err := PakeInitStart(ParamsKyber768, pw, rand.Reader, nil)
	require.NoError(err)

	env, err := ParseEncPK(ParamsKyber768, encPK)
	require.NoError(err)

	msg2, _, _, err := PakeResp(ParamsKyber768, env.Sid, env.Msg1, pw, rand.Reader, nil)
	require.NoError(err)

	var otherSid [32]byte
	copy(otherSid[:], env.Sid[:])
	otherSid[0] ^= 0xff

	_, _, _, err = PakeInitEnd(ParamsKyber768, msg2, otherSid[:], encPK, pk, sk, nil)
	require.ErrorIs(err, ErrInvalidInput)
}

func TestPakeAcrossParameterSets(t *testing.T) {
	for _, p := range []*Params{ParamsKyber512, ParamsKyber768, ParamsKyber1024} {
		p := p
		t.Run(p.Name(), func(t *testing.T) {
			require := require.New(t)
			pw := fixedPw(0x3c)

			encPK, pk, sk, err := PakeInitStart(p, pw, rand.Reader, nil)
			require.NoError(err)

			env, err := ParseEncPK(p, encPK)
			require.NoError(err)

			msg2, respKey, _, err := PakeResp(p, env.Sid, env.Msg1, pw, rand.Reader, nil)
			require.NoError(err)

			initKey, _, status, err := PakeInitEnd(p, msg2, env.Sid[:], encPK, pk, sk, nil)
			require.NoError(err)
			require.Equal(byte(0), status)
			require.True(bytes.Equal(respKey, initKey))
		})
	}
}

func TestPakeRespRejectsWrongLengthMsg1(t *testing.T) {
	require := require.New(t)

	pw := fixedPw(0x44)
	var sid [32]byte

	_, _, _, err := PakeResp(ParamsKyber768, sid, make([]byte, 3), pw, rand.Reader, nil)
	require.ErrorIs(err, ErrInvalidInput)
}

func TestPakeInjectedKEMMatchesDefault(t *testing.T) {
	require := require.New(t)

	pw := fixedPw(0x5e)
	var injected FuncKEM // all nil fields fall back to the default binding

	encPK, pk, sk, err := PakeInitStart(ParamsKyber768, pw, rand.Reader, injected)
	require.NoError(err)

	env, err := ParseEncPK(ParamsKyber768, encPK)
	require.NoError(err)

	msg2, respKey, _, err := PakeResp(ParamsKyber768, env.Sid, env.Msg1, pw, rand.Reader, injected)
	require.NoError(err)

	initKey, _, status, err := PakeInitEnd(ParamsKyber768, msg2, env.Sid[:], encPK, pk, sk, injected)
	require.NoError(err)
	require.Equal(byte(0), status)
	require.True(bytes.Equal(respKey, initKey))
}
