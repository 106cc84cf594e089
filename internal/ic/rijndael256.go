// Package ic implements IC-256, the 256-bit-block, 256-bit-key ideal cipher
// HIC is built over. No Go module in the retrieval pack, nor any well-known
// published Go module, implements Rijndael at the 256-bit block size AES
// standardized away — AES froze block size at 128 bits, and stdlib
// crypto/aes follows AES, not the original variable-block-size Rijndael.
// This is the one deliberately hand-rolled primitive in the module; see
// DESIGN.md for the justification.
package ic

// blockWidth is the cipher's block and key size in bytes: 256 bits.
const blockWidth = 32

// nb is the number of 32-bit columns in the state (blockWidth/4).
const nb = 8

// nk is the number of 32-bit words in the key (blockWidth/4).
const nk = 8

// nr is the number of encryption rounds for Nb=Nk=8, per the Rijndael
// round-count rule max(Nb,Nk)+6.
const nr = 14

// shiftOffsets are the per-row left-rotation amounts for ShiftRows at Nb=8,
// per the Rijndael specification's shift-offset table (distinct from AES's
// Nb=4 offsets of 0,1,2,3).
var shiftOffsets = [4]int{0, 1, 3, 4}

// sbox is the AES/Rijndael S-box, shared across all Rijndael block sizes.
var sbox = [256]byte{
	0x63, 0x7c, 0x77, 0x7b, 0xf2, 0x6b, 0x6f, 0xc5, 0x30, 0x01, 0x67, 0x2b, 0xfe, 0xd7, 0xab, 0x76,
	0xca, 0x82, 0xc9, 0x7d, 0xfa, 0x59, 0x47, 0xf0, 0xad, 0xd4, 0xa2, 0xaf, 0x9c, 0xa4, 0x72, 0xc0,
	0xb7, 0xfd, 0x93, 0x26, 0x36, 0x3f, 0xf7, 0xcc, 0x34, 0xa5, 0xe5, 0xf1, 0x71, 0xd8, 0x31, 0x15,
	0x04, 0xc7, 0x23, 0xc3, 0x18, 0x96, 0x05, 0x9a, 0x07, 0x12, 0x80, 0xe2, 0xeb, 0x27, 0xb2, 0x75,
	0x09, 0x83, 0x2c, 0x1a, 0x1b, 0x6e, 0x5a, 0xa0, 0x52, 0x3b, 0xd6, 0xb3, 0x29, 0xe3, 0x2f, 0x84,
	0x53, 0xd1, 0x00, 0xed, 0x20, 0xfc, 0xb1, 0x5b, 0x6a, 0xcb, 0xbe, 0x39, 0x4a, 0x4c, 0x58, 0xcf,
	0xd0, 0xef, 0xaa, 0xfb, 0x43, 0x4d, 0x33, 0x85, 0x45, 0xf9, 0x02, 0x7f, 0x50, 0x3c, 0x9f, 0xa8,
	0x51, 0xa3, 0x40, 0x8f, 0x92, 0x9d, 0x38, 0xf5, 0xbc, 0xb6, 0xda, 0x21, 0x10, 0xff, 0xf3, 0xd2,
	0xcd, 0x0c, 0x13, 0xec, 0x5f, 0x97, 0x44, 0x17, 0xc4, 0xa7, 0x7e, 0x3d, 0x64, 0x5d, 0x19, 0x73,
	0x60, 0x81, 0x4f, 0xdc, 0x22, 0x2a, 0x90, 0x88, 0x46, 0xee, 0xb8, 0x14, 0xde, 0x5e, 0x0b, 0xdb,
	0xe0, 0x32, 0x3a, 0x0a, 0x49, 0x06, 0x24, 0x5c, 0xc2, 0xd3, 0xac, 0x62, 0x91, 0x95, 0xe4, 0x79,
	0xe7, 0xc8, 0x37, 0x6d, 0x8d, 0xd5, 0x4e, 0xa9, 0x6c, 0x56, 0xf4, 0xea, 0x65, 0x7a, 0xae, 0x08,
	0xba, 0x78, 0x25, 0x2e, 0x1c, 0xa6, 0xb4, 0xc6, 0xe8, 0xdd, 0x74, 0x1f, 0x4b, 0xbd, 0x8b, 0x8a,
	0x70, 0x3e, 0xb5, 0x66, 0x48, 0x03, 0xf6, 0x0e, 0x61, 0x35, 0x57, 0xb9, 0x86, 0xc1, 0x1d, 0x9e,
	0xe1, 0xf8, 0x98, 0x11, 0x69, 0xd9, 0x8e, 0x94, 0x9b, 0x1e, 0x87, 0xe9, 0xce, 0x55, 0x28, 0xdf,
	0x8c, 0xa1, 0x89, 0x0d, 0xbf, 0xe6, 0x42, 0x68, 0x41, 0x99, 0x2d, 0x0f, 0xb0, 0x54, 0xbb, 0x16,
}

var invSbox = buildInvSbox()

func buildInvSbox() [256]byte {
	var inv [256]byte
	for i, s := range sbox {
		inv[s] = byte(i)
	}
	return inv
}

// rcon holds the round constants used by the key schedule, generated by
// repeated xtime starting from 0x01 — the same recurrence AES-256 (Nk=8)
// uses, independent of block size.
var rcon = buildRcon(nb*(nr+1)/nk + 1)

func buildRcon(count int) []byte {
	r := make([]byte, count)
	r[0] = 0x01
	for i := 1; i < count; i++ {
		r[i] = xtime(r[i-1])
	}
	return r
}

// xtime multiplies a by {02} in GF(2^8) modulo the Rijndael reduction
// polynomial x^8+x^4+x^3+x+1 (0x11B).
func xtime(a byte) byte {
	hi := a & 0x80
	a <<= 1
	if hi != 0 {
		a ^= 0x1b
	}
	return a
}

// gmul multiplies a and b in GF(2^8).
func gmul(a, b byte) byte {
	var p byte
	for i := 0; i < 8; i++ {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

// expandKey derives the Nb*(Nr+1)-word round-key schedule from a 32-byte
// key, per the generalized Rijndael key expansion (identical in shape to
// AES-256's Nk=8 schedule, but run out to Nb=8*(14+1)=120 words instead of
// AES's 4*(14+1)=60).
func expandKey(key []byte) [][4]byte {
	words := make([][4]byte, nb*(nr+1))
	for i := 0; i < nk; i++ {
		copy(words[i][:], key[4*i:4*i+4])
	}

	for i := nk; i < len(words); i++ {
		temp := words[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(temp))
			temp[0] ^= rcon[i/nk-1]
		case nk > 6 && i%nk == 4:
			temp = subWord(temp)
		}
		for j := 0; j < 4; j++ {
			words[i][j] = words[i-nk][j] ^ temp[j]
		}
	}
	return words
}

func subWord(w [4]byte) [4]byte {
	for i := range w {
		w[i] = sbox[w[i]]
	}
	return w
}

func rotWord(w [4]byte) [4]byte {
	return [4]byte{w[1], w[2], w[3], w[0]}
}

// addRoundKey XORs round r's key words into state.
func addRoundKey(state *[blockWidth]byte, words [][4]byte, r int) {
	for c := 0; c < nb; c++ {
		w := words[r*nb+c]
		for row := 0; row < 4; row++ {
			state[row+4*c] ^= w[row]
		}
	}
}

func subBytes(state *[blockWidth]byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func invSubBytes(state *[blockWidth]byte) {
	for i := range state {
		state[i] = invSbox[state[i]]
	}
}

// shiftRows cyclically left-shifts row r by shiftOffsets[r] columns.
func shiftRows(state *[blockWidth]byte) {
	var out [blockWidth]byte
	for row := 0; row < 4; row++ {
		for c := 0; c < nb; c++ {
			src := (c + shiftOffsets[row]) % nb
			out[row+4*c] = state[row+4*src]
		}
	}
	*state = out
}

func invShiftRows(state *[blockWidth]byte) {
	var out [blockWidth]byte
	for row := 0; row < 4; row++ {
		for c := 0; c < nb; c++ {
			src := ((c-shiftOffsets[row])%nb + nb) % nb
			out[row+4*c] = state[row+4*src]
		}
	}
	*state = out
}

func mixColumns(state *[blockWidth]byte) {
	for c := 0; c < nb; c++ {
		a0, a1, a2, a3 := state[4*c], state[1+4*c], state[2+4*c], state[3+4*c]
		state[4*c] = gmul(a0, 2) ^ gmul(a1, 3) ^ a2 ^ a3
		state[1+4*c] = a0 ^ gmul(a1, 2) ^ gmul(a2, 3) ^ a3
		state[2+4*c] = a0 ^ a1 ^ gmul(a2, 2) ^ gmul(a3, 3)
		state[3+4*c] = gmul(a0, 3) ^ a1 ^ a2 ^ gmul(a3, 2)
	}
}

func invMixColumns(state *[blockWidth]byte) {
	for c := 0; c < nb; c++ {
		a0, a1, a2, a3 := state[4*c], state[1+4*c], state[2+4*c], state[3+4*c]
		state[4*c] = gmul(a0, 0x0e) ^ gmul(a1, 0x0b) ^ gmul(a2, 0x0d) ^ gmul(a3, 0x09)
		state[1+4*c] = gmul(a0, 0x09) ^ gmul(a1, 0x0e) ^ gmul(a2, 0x0b) ^ gmul(a3, 0x0d)
		state[2+4*c] = gmul(a0, 0x0d) ^ gmul(a1, 0x09) ^ gmul(a2, 0x0e) ^ gmul(a3, 0x0b)
		state[3+4*c] = gmul(a0, 0x0b) ^ gmul(a1, 0x0d) ^ gmul(a2, 0x09) ^ gmul(a3, 0x0e)
	}
}

// rijndael256Encrypt encrypts a single 32-byte block under a 32-byte key.
func rijndael256Encrypt(dst, src, key []byte) {
	words := expandKey(key)

	var state [blockWidth]byte
	copy(state[:], src)

	addRoundKey(&state, words, 0)
	for round := 1; round < nr; round++ {
		subBytes(&state)
		shiftRows(&state)
		mixColumns(&state)
		addRoundKey(&state, words, round)
	}
	subBytes(&state)
	shiftRows(&state)
	addRoundKey(&state, words, nr)

	copy(dst, state[:])
}

// rijndael256Decrypt decrypts a single 32-byte block under a 32-byte key.
func rijndael256Decrypt(dst, src, key []byte) {
	words := expandKey(key)

	var state [blockWidth]byte
	copy(state[:], src)

	// Undo the final round (no MixColumns in it).
	addRoundKey(&state, words, nr)
	invShiftRows(&state)
	invSubBytes(&state)

	// Undo each full round: AddRoundKey must be peeled off before
	// InvMixColumns, mirroring the forward round's
	// SubBytes/ShiftRows/MixColumns/AddRoundKey order in reverse.
	for round := nr - 1; round >= 1; round-- {
		addRoundKey(&state, words, round)
		invMixColumns(&state)
		invShiftRows(&state)
		invSubBytes(&state)
	}

	addRoundKey(&state, words, 0)

	copy(dst, state[:])
}
