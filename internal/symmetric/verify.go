package symmetric

import "crypto/subtle"

// Verify compares a and b in constant time, per crypto/subtle's
// ConstantTimeCompare (the same primitive the teacher's kem.go uses for its
// Fujisaki-Okamoto re-encryption check). It returns 0 when a and b are
// equal, nonzero otherwise — the sense CHIC's init_end expects for its
// status byte.
func Verify(a, b []byte) byte {
	if subtle.ConstantTimeCompare(a, b) == 1 {
		return 0
	}
	return 1
}

// Cmov copies src into dst in constant time iff cond is 1; dst is left
// untouched iff cond is 0. cond must be 0 or 1. Mirrors the teacher's use of
// subtle.ConstantTimeCopy in kem.go's KEMDecrypt.
func Cmov(dst, src []byte, cond byte) {
	subtle.ConstantTimeCopy(int(cond), dst, src)
}
