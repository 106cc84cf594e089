// Package chic implements the CHIC (Compiler-from-Half-Ideal-Cipher to PAKE)
// post-quantum password-authenticated key exchange: a three-message
// protocol built from a Half-Ideal-Cipher transform over Kyber public keys.
//
// The package exposes exactly three operations — PakeInitStart, PakeResp,
// and PakeInitEnd — corresponding to the initiator's two steps and the
// responder's single step of a session. Everything else (the polynomial
// ring, the ideal cipher, the HIC transform, the built-in Kyber bindings)
// is internal.
package chic
