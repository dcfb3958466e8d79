package crypto_test

import (
	"testing"

	"spellblock/internal/crypto"
)

func TestKeccak256KnownVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"hello", "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"},
	}
	for _, tt := range tests {
		if got := crypto.Hex(crypto.Keccak256([]byte(tt.in))); got != tt.want {
			t.Errorf("Keccak256(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseHashRoundTrip(t *testing.T) {
	h := crypto.Keccak256([]byte("spellblock"))
	got, err := crypto.ParseHash(crypto.Hex(h))
	if err != nil {
		t.Fatalf("ParseHash: %v", err)
	}
	if got != h {
		t.Fatal("round trip mismatch")
	}
	if _, err := crypto.ParseHash("0x1234"); err == nil {
		t.Fatal("want length error")
	}
}

func TestFingerprintStable(t *testing.T) {
	a := crypto.Fingerprint([]string{"ass", "cat"})
	b := crypto.Fingerprint([]string{"ass", "cat"})
	c := crypto.Fingerprint([]string{"asscat"})
	if a != b {
		t.Fatal("fingerprint not deterministic")
	}
	if a == c {
		t.Fatal("word boundaries not reflected in fingerprint")
	}
	if len(a) != 20 {
		t.Fatalf("want 20 hex chars, got %d", len(a))
	}
}
