package chic

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/esquivel71/chic-pake-go/internal/chic"
	"github.com/esquivel71/chic-pake-go/internal/params"
)

// PakeInitStart generates a fresh Kyber keypair, masks the public key under
// (pw, sid) with HIC, and returns the wire envelope to send to the
// responder. sid is drawn fresh from rng — callers must never supply or
// reuse one, matching the protocol's freshness requirement.
//
// A nil rng defaults to crypto/rand.Reader; a nil kem defaults to the
// built-in binding matching p's parameter set.
func PakeInitStart(p *Params, pw [32]byte, rng io.Reader, k KEM) (encPK, pk, sk []byte, err error) {
	defer wipe(pw[:])

	if rng == nil {
		rng = rand.Reader
	}
	k = defaultKEM(p, k)

	var sid [32]byte
	if _, err := io.ReadFull(rng, sid[:]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: sid: %v", ErrOther, err)
	}

	msg1, pk, sk, err := chic.InitStart(p, pw[:], sid[:], rng, k)
	if err != nil {
		return nil, nil, nil, classify(err)
	}

	env := EncPK{Sid: sid, Msg1: msg1}
	return env.Bytes(), pk, sk, nil
}

// PakeResp inverts HIC to recover the initiator's (possibly bogus, if pw was
// wrong) public key, encapsulates a fresh shared secret under it, and
// returns the wire message, the session key, and the initiator-to-responder
// confirmation tag the caller should forward. The responder is stateless:
// Resp is its entire session lifecycle.
func PakeResp(p *Params, sid [32]byte, msg1 []byte, pw [32]byte, rng io.Reader, k KEM) (msg2, key, initTag []byte, err error) {
	defer wipe(pw[:])

	if rng == nil {
		rng = rand.Reader
	}
	k = defaultKEM(p, k)

	if len(msg1) != p.Msg1Len() {
		return nil, nil, nil, ErrInvalidInput
	}

	msg2, key, initTag, err = chic.Resp(p, sid[:], msg1, pw[:], rng, k)
	if err != nil {
		return nil, nil, nil, classify(err)
	}
	return msg2, key, initTag, nil
}

// PakeInitEnd decapsulates the responder's ciphertext, recomputes the
// session transcript, and verifies the responder's confirmation tag in
// constant time. key is populated only when status == 0; on failure it is
// returned zeroed, and the session must be abandoned — there is no retry.
//
// encPK must be the same envelope PakeInitStart returned: its sid is
// cross-checked against the bare sid parameter, and its msg1 is the message 1
// hashed into the transcript.
func PakeInitEnd(p *Params, msg2, sid, encPK, pk, sk []byte, k KEM) (key, initTag []byte, status byte, err error) {
	k = defaultKEM(p, k)

	env, err := ParseEncPK(p, encPK)
	if err != nil {
		return nil, nil, 0, err
	}
	if len(sid) != params.SymBytes || !bytesEqual(env.Sid[:], sid) {
		return nil, nil, 0, ErrInvalidInput
	}

	key, initTag, status, err = chic.InitEnd(p, msg2, sid, env.Msg1, pk, sk, k)
	if err != nil {
		return nil, nil, 0, classify(err)
	}
	return key, initTag, status, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// classify wraps an internal/chic error with the root package's sentinel
// taxonomy, preserving the underlying cause for errors.Is/errors.As.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, chic.ErrInvalidInput):
		return ErrInvalidInput
	default:
		return fmt.Errorf("%w: %w", ErrKEM, err)
	}
}
