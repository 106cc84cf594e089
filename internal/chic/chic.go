// Package chic implements the CHIC (Compiler-from-Half-Ideal-Cipher to PAKE)
// three-message protocol core, grounded on original_source/src/chic.rs.
package chic

import (
	"fmt"
	"io"

	"github.com/esquivel71/chic-pake-go/internal/hic"
	"github.com/esquivel71/chic-pake-go/internal/kem"
	"github.com/esquivel71/chic-pake-go/internal/params"
	"github.com/esquivel71/chic-pake-go/internal/symmetric"
	"github.com/esquivel71/chic-pake-go/internal/zeroize"
)

// InitStart generates a fresh KEM keypair and masks the public key under
// (pw, sid) with HIC, producing message 1 for the responder.
func InitStart(p *params.Set, pw, sid []byte, rng io.Reader, k kem.KEM) (msg1, pk, sk []byte, err error) {
	pk, sk, err = k.Keypair(rng)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("chic: keypair: %w", err)
	}
	if len(pk) != p.PublicKeyBytes() {
		zeroize.Wipe(sk)
		return nil, nil, nil, ErrInvalidInput
	}

	msg1 = hic.Eval(p, pk, pw, sid)
	return msg1, pk, sk, nil
}

// Resp inverts HIC to recover a (possibly bogus, if pw was wrong) public
// key, encapsulates under it, and derives the session key plus both
// confirmation tags.
func Resp(p *params.Set, sid, msg1, pw []byte, rng io.Reader, k kem.KEM) (msg2, key, initTag []byte, err error) {
	if len(msg1) != p.PublicKeyBytes() {
		return nil, nil, nil, ErrInvalidInput
	}

	pkPrime := hic.Inv(p, msg1, pw, sid)

	ct, ss, err := k.Encapsulate(pkPrime, rng)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("chic: encapsulate: %w", err)
	}

	hashIn := transcript(ss, sid, pkPrime, msg1, ct)
	zeroize.Wipe(ss)

	gOut := symmetric.G(hashIn)
	zeroize.Wipe(hashIn)

	k0 := gOut[:params.SymBytes]
	tauR := gOut[params.SymBytes:]

	tauI := symmetric.H(concatBind(k0, sid))

	msg2 = make([]byte, params.SymBytes+len(ct))
	copy(msg2, tauR)
	copy(msg2[params.SymBytes:], ct)

	key = append([]byte(nil), k0...)
	initTag = tauI[:]

	zeroize.Wipe(gOut[:])

	return msg2, key, initTag, nil
}

// InitEnd decapsulates, recomputes the transcript hash, and verifies the
// responder's confirmation tag in constant time. key is populated only on
// success (status == 0); on failure it is returned as all zeros.
func InitEnd(p *params.Set, msg2, sid, msg1, pk, sk []byte, k kem.KEM) (key, initTag []byte, status byte, err error) {
	if len(msg2) != p.Msg2Len() || len(msg1) != p.PublicKeyBytes() {
		return nil, nil, 0, ErrInvalidInput
	}

	tauR := msg2[:params.SymBytes]
	ct := msg2[params.SymBytes:]

	ss, err := k.Decapsulate(ct, sk)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("chic: decapsulate: %w", err)
	}

	hashIn := transcript(ss, sid, pk, msg1, ct)
	zeroize.Wipe(ss)

	gOut := symmetric.G(hashIn)
	zeroize.Wipe(hashIn)

	kCandidate := gOut[:params.SymBytes]
	tauRPrime := gOut[params.SymBytes:]

	status = symmetric.Verify(tauRPrime, tauR)

	key = make([]byte, params.SymBytes)
	symmetric.Cmov(key, kCandidate, 1-status)

	zeroize.Wipe(gOut[:])

	tauI := symmetric.H(concatBind(key, sid))
	initTag = tauI[:]

	return key, initTag, status, nil
}

// transcript builds ss ∥ sid ∥ pk' ∥ msg1 ∥ ct ∥ 0x00, the input to G that
// binds the session key and both confirmation tags to every protocol value.
func transcript(ss, sid, pk, msg1, ct []byte) []byte {
	out := make([]byte, 0, len(ss)+len(sid)+len(pk)+len(msg1)+len(ct)+1)
	out = append(out, ss...)
	out = append(out, sid...)
	out = append(out, pk...)
	out = append(out, msg1...)
	out = append(out, ct...)
	out = append(out, 0x00)
	return out
}

func concatBind(key, sid []byte) []byte {
	out := make([]byte, 0, len(key)+len(sid))
	out = append(out, key...)
	out = append(out, sid...)
	return out
}
