package crypto

import "golang.org/x/crypto/sha3"

// Hash is a 32-byte Keccak-256 digest.
type Hash [32]byte

// Keccak256 returns the legacy Keccak-256 digest of data.
func Keccak256(data []byte) Hash {
	var out Hash
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	h.Sum(out[:0])
	return out
}

// Keccak256Concat hashes a||b.
func Keccak256Concat(a, b Hash) Hash {
	var buf [64]byte
	copy(buf[:32], a[:])
	copy(buf[32:], b[:])
	return Keccak256(buf[:])
}
