package common

import (
	"encoding/hex"
	"testing"
)

// ---------- MakeRandHexString ----------

func TestMakeRandHexString_LengthAndHex(t *testing.T) {
	const n = 16
	s, err := MakeRandHexString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != n*2 {
		t.Fatalf("expected hex length %d, got %d", n*2, len(s))
	}
	if _, err := hex.DecodeString(s); err != nil {
		t.Fatalf("string is not valid hex: %v", err)
	}
}

func TestMakeRandHexString_ZeroSize(t *testing.T) {
	s, err := MakeRandHexString(0)
	if err != nil {
		t.Fatalf("unexpected error for size=0: %v", err)
	}
	if s != "" {
		t.Fatalf("expected empty string for size=0, got %q", s)
	}
}

func TestMakeRandHexString_Uniqueness(t *testing.T) {
	const n = 32
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		s, err := MakeRandHexString(n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := seen[s]; ok {
			t.Fatalf("duplicate token generated: %q", s)
		}
		seen[s] = struct{}{}
	}
}
