package identity

import (
	"regexp"
	"testing"
)

var tokenPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

func TestToken_ShapeAndVariance(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 64; i++ {
		token := Token()
		if !tokenPattern.MatchString(token) {
			t.Fatalf("Token() = %q, want 8 lowercase alphanumerics", token)
		}
		seen[token] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("expected varying tokens, got %d distinct values", len(seen))
	}
}

func TestProductToken_Deterministic(t *testing.T) {
	first := ProductToken("acme-widget-3000")
	second := ProductToken("acme-widget-3000")
	if first != second {
		t.Fatalf("ProductToken() not stable: %q vs %q", first, second)
	}
	if !tokenPattern.MatchString(first) {
		t.Fatalf("ProductToken() = %q, want 8 lowercase alphanumerics", first)
	}
	if other := ProductToken("different-product"); other == first {
		t.Fatalf("distinct products produced identical token %q", first)
	}
}

func TestDeterministicUUID_EmptyKey(t *testing.T) {
	if got := DeterministicUUID("   "); got.String() != "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("DeterministicUUID(blank) = %s, want nil UUID", got)
	}
}
