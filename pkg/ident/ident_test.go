package ident

import "testing"

func TestNewIsNonEmpty(t *testing.T) {
	if id := New(); id == "" {
		t.Fatal("expected a non-empty identifier")
	}
}

func TestNewDoesNotCollide(t *testing.T) {
	const n = 100000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		id := New()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate identifier after %d draws: %s", i, id)
		}
		seen[id] = struct{}{}
	}
}
