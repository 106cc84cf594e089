package chic

import "github.com/esquivel71/chic-pake-go/internal/zeroize"

// wipe overwrites b with zeros. Used to clear password copies and discarded
// secret key material once a caller is done with them.
func wipe(b []byte) {
	zeroize.Wipe(b)
}
