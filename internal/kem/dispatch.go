package kem

import "github.com/esquivel71/chic-pake-go/internal/params"

// DefaultFor returns the built-in KEM binding matching p's vector width.
// Default() alone cannot serve this: it always wraps Kyber-768, which
// produces an 1184-byte public key regardless of which parameter set the
// caller asked for, so a caller working with Kyber-512 or Kyber-1024 needs
// the width-aware form.
func DefaultFor(p *params.Set) KEM {
	switch p.K() {
	case 2:
		return kyber512KEM{}
	case 4:
		return kyber1024KEM{}
	default:
		return kyber768KEM{}
	}
}
