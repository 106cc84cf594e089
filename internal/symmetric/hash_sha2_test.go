//go:build sha2

package symmetric

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Known-answer tests from FIPS 180-4, per spec.md §8's "SHA-256/SHA-512
// binding" scenario.
func TestHashSHA2KnownAnswers(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		in       string
		sha256hx string
		sha512hx string
	}{
		{
			"",
			"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			"cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e",
		},
		{
			"abc",
			"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
			"ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
		},
		{
			"The quick brown fox jumps over the lazy dog",
			"d7a8fbb307d7809469ca9abcb0082e4f8d5651e46d3cdb762d02d0bf37c9e592",
			"",
		},
	}

	for _, c := range cases {
		h := H([]byte(c.in))
		require.Equal(c.sha256hx, hex.EncodeToString(h[:]), "H(%q)", c.in)

		if c.sha512hx != "" {
			g := G([]byte(c.in))
			require.Equal(c.sha512hx, hex.EncodeToString(g[:]), "G(%q)", c.in)
		}
	}
}
