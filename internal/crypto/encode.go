package crypto

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Hex returns h as 0x-prefixed lowercase hex.
func Hex(h Hash) string { return "0x" + hex.EncodeToString(h[:]) }

// String implements fmt.Stringer.
func (h Hash) String() string { return Hex(h) }

// ParseHash decodes a 0x-prefixed (or bare) 64-char hex string.
func ParseHash(s string) (Hash, error) {
	var h Hash
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return h, err
	}
	if len(raw) != len(h) {
		return h, fmt.Errorf("crypto: hash must be %d bytes, got %d", len(h), len(raw))
	}
	copy(h[:], raw)
	return h, nil
}
