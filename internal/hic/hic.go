// Package hic implements the Half-Ideal-Cipher transform: a password-keyed,
// length-preserving, invertible permutation over the byte layout of a Kyber
// public key, grounded on original_source/src/hic/mod.rs's hic_eval/hic_inv.
package hic

import (
	"github.com/esquivel71/chic-pake-go/internal/ic"
	"github.com/esquivel71/chic-pake-go/internal/params"
	"github.com/esquivel71/chic-pake-go/internal/ring"
	"github.com/esquivel71/chic-pake-go/internal/sampler"
	"github.com/esquivel71/chic-pake-go/internal/symmetric"
	"github.com/esquivel71/chic-pake-go/internal/zeroize"
)

// Eval transforms pk, decomposed as (t ∥ ρ), into icc = (t' ∥ ρ'): the
// polynomial-vector part masked by a password-and-seed-derived Polyvec, and
// the seed encrypted under a key derived from the masked part.
//
// pk must be exactly p.PublicKeyBytes() long. pw and sid must each be
// params.SymBytes long.
func Eval(p *params.Set, pk, pw, sid []byte) []byte {
	polyVecBytes := p.PolyVecBytes()
	t := pk[:polyVecBytes]
	rho := pk[polyVecBytes:]

	// Step 1-2: one-time masking seed R, expanded into M.
	r := symmetric.H(concat(pw, sid, rho))
	m := sampler.GenVector(r[:], p.K())
	zeroize.Wipe(r[:])

	// Step 3: masked vector t' = reduce(t + M).
	tPoly := ring.New(p.K())
	tPoly.FromBytes(t)

	tPrime := ring.New(p.K())
	tPrime.Add(&tPoly, &m)
	tPrime.Reduce()
	m.Wipe()

	tPrimeBytes := make([]byte, polyVecBytes)
	tPrime.ToBytes(tPrimeBytes)

	// Step 4: IC key kappa = H(pw ∥ sid ∥ t').
	kappa := symmetric.H(concat(pw, sid, tPrimeBytes))

	// Step 5: rho' = IC-256.Enc(kappa, rho).
	rhoPrime := ic.Encrypt(kappa[:], rho)
	zeroize.Wipe(kappa[:])

	icc := make([]byte, polyVecBytes+params.SymBytes)
	copy(icc, tPrimeBytes)
	copy(icc[polyVecBytes:], rhoPrime[:])
	return icc
}

// Inv is the inverse of Eval: Inv(Eval(pk, pw, sid), pw, sid) == pk for every
// (pw, sid) and every pk whose packed coefficients all lie in [0, q), as in a
// Kyber public key. Eval reduces coefficients modulo q, so a pk carrying a
// 12-bit value of q or more is recovered in its reduced form, not byte for
// byte.
//
// icc must be exactly p.PublicKeyBytes() long.
func Inv(p *params.Set, icc, pw, sid []byte) []byte {
	polyVecBytes := p.PolyVecBytes()
	tPrimeBytes := icc[:polyVecBytes]
	rhoPrime := icc[polyVecBytes:]

	// Step 2: kappa = H(pw ∥ sid ∥ t'), identical derivation to Eval.
	kappa := symmetric.H(concat(pw, sid, tPrimeBytes))

	// Step 3: rho = IC-256.Dec(kappa, rho').
	rho := ic.Decrypt(kappa[:], rhoPrime)
	zeroize.Wipe(kappa[:])

	// Step 4: R = H(pw ∥ sid ∥ rho), expand to M, t = reduce(t' - M).
	r := symmetric.H(concat(pw, sid, rho[:]))
	m := sampler.GenVector(r[:], p.K())
	zeroize.Wipe(r[:])

	tPrime := ring.New(p.K())
	tPrime.FromBytes(tPrimeBytes)

	t := ring.New(p.K())
	t.Sub(&tPrime, &m)
	t.Reduce()
	m.Wipe()
	tPrime.Wipe()

	tBytes := make([]byte, polyVecBytes)
	t.ToBytes(tBytes)

	pk := make([]byte, polyVecBytes+params.SymBytes)
	copy(pk, tBytes)
	copy(pk[polyVecBytes:], rho[:])
	return pk
}

func concat(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
