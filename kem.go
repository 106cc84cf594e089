package chic

import "github.com/esquivel71/chic-pake-go/internal/kem"

// KEM is the key-encapsulation capability CHIC is built over. A caller may
// inject its own binding; a nil KEM passed to PakeInitStart, PakeResp, or
// PakeInitEnd selects the built-in binding matching the caller's parameter
// set (Kyber-512/768/1024).
type KEM = kem.KEM

// FuncKEM adapts three closures into a KEM, for callers who would rather
// pass functions than implement the KEM interface directly.
type FuncKEM = kem.FuncKEM

// defaultKEM resolves a nil KEM to the built-in binding for p's parameter
// set, so the same Params a caller used to size buffers also selects the
// matching circl Kyber width.
func defaultKEM(p *Params, k KEM) KEM {
	if k == nil {
		return kem.DefaultFor(p)
	}
	return k
}
