package nonce

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestGenerator_Generate(t *testing.T) {
	gen := NewGenerator()

	before := time.Now().UnixMilli()
	got := gen.Generate(16)
	after := time.Now().UnixMilli()

	if len(got) < 16 {
		t.Fatalf("Generate(16) length = %d, want at least 16", len(got))
	}
	for _, ch := range got {
		if !strings.ContainsRune("0123456789abcdefghijklmnopqrstuvwxyz", ch) {
			t.Fatalf("Generate(16) = %q contains non-base36 rune %q", got, ch)
		}
	}

	// The leading component is the unix-millis timestamp in base36.
	prefix := got[:len(got)-16]
	ts, err := strconv.ParseInt(prefix, 36, 64)
	if err != nil {
		t.Fatalf("parse timestamp prefix %q: %v", prefix, err)
	}
	if ts < before || ts > after {
		t.Errorf("timestamp prefix = %d, want between %d and %d", ts, before, after)
	}
}

func TestGenerator_DefaultLength(t *testing.T) {
	gen := NewGenerator()

	got := gen.Generate(0)
	if len(got) < DefaultLength {
		t.Errorf("Generate(0) length = %d, want at least %d", len(got), DefaultLength)
	}
}

func TestGenerator_Distinct(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		n := gen.Generate(16)
		if seen[n] {
			t.Fatalf("duplicate nonce after %d draws: %q", i, n)
		}
		seen[n] = true
	}
}
