package domain

import (
	"strings"
	"testing"
)

func TestParseProductID_RoundTrip(t *testing.T) {
	raw := "64b6f2a1c9e77d0012345678"
	id, err := ParseProductID(raw)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.Hex() != raw {
		t.Fatalf("round trip changed id: %s", id.Hex())
	}
}

func TestParseProductID_TrimsWhitespace(t *testing.T) {
	id, err := ParseProductID("  64b6f2a1c9e77d0012345678  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if id.Hex() != "64b6f2a1c9e77d0012345678" {
		t.Fatalf("unexpected id: %s", id.Hex())
	}
}

func TestParseProductID_RejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"123",
		"not-a-hex-string-at-all!!",
		"64b6f2a1c9e77d00123456",     // too short
		"64b6f2a1c9e77d001234567890", // too long
		"zzb6f2a1c9e77d0012345678",   // non-hex
	}
	for _, raw := range cases {
		_, err := ParseProductID(raw)
		if err == nil {
			t.Fatalf("expected error for %q", raw)
		}
		if !IsValidation(err) {
			t.Fatalf("expected ValidationError for %q, got %T", raw, err)
		}
		if !strings.Contains(err.Error(), "Invalid product ID.") {
			t.Fatalf("unexpected message for %q: %s", raw, err.Error())
		}
	}
}
