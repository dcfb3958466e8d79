package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short hex fingerprint of an ordered word list.
//
// Words are joined with '\n', hashed with SHA-256 and truncated to 10 bytes
// (20 hex chars). Callers pass sorted input for a stable value.
func Fingerprint(words []string) string {
	h := sha256.New()
	for _, w := range words {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:10])
}
