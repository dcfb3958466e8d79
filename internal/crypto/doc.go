// Package crypto exposes the hashing and encoding primitives used by
// spellblock.
//
// Contents
//
//   - Legacy Keccak-256 as used by the EVM (Keccak256, Keccak256Concat)
//   - 0x-prefixed hex encoding and decoding of 32-byte digests (Hex, ParseHash)
//   - Short fingerprints of word lists for display/logging (Fingerprint)
//
// # Notes
//
// Keccak256 is the pre-standard Keccak padding, not FIPS-202 SHA3-256. The
// dictionary verifier contract hashes words with keccak256, so leaves built
// here must use the same function.
package crypto
