package chic

import "github.com/esquivel71/chic-pake-go/internal/params"

// EncPK is the initiator's outbound envelope, wrapping its session id
// alongside message 1 so the responder need not acquire sid out-of-band.
type EncPK struct {
	Sid  [32]byte
	Msg1 []byte
}

// Bytes serializes e as sid ∥ msg1.
func (e EncPK) Bytes() []byte {
	out := make([]byte, 0, len(e.Sid)+len(e.Msg1))
	out = append(out, e.Sid[:]...)
	out = append(out, e.Msg1...)
	return out
}

// ParseEncPK parses the sid ∥ msg1 envelope produced by PakeInitStart, for
// the given parameter set's message-1 length.
func ParseEncPK(p *Params, b []byte) (EncPK, error) {
	want := params.SymBytes + p.Msg1Len()
	if len(b) != want {
		return EncPK{}, ErrInvalidInput
	}

	var e EncPK
	copy(e.Sid[:], b[:params.SymBytes])
	e.Msg1 = append([]byte(nil), b[params.SymBytes:]...)
	return e, nil
}
