// Package zeroize overwrites secret-holding buffers once a caller is done
// with them, shared by the internal packages that handle password- and
// key-derived material directly.
//
// Grounded on the zeroizeBytes pattern from the cb-mpc-go key-handling code
// in the retrieval pack — no ecosystem zeroize/memguard package appears
// anywhere in it.
package zeroize

import "runtime"

// Wipe overwrites b with zeros in place. b must not alias any buffer the
// caller still needs after Wipe returns.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
