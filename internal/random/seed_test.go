package random

import "testing"

func TestNewSeedVaries(t *testing.T) {
	seen := make(map[int64]struct{})
	for i := 0; i < 8; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("new seed: %v", err)
		}
		seen[seed] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatalf("expected distinct seeds, got %d unique", len(seen))
	}
}

func TestResolveSeed(t *testing.T) {
	t.Run("caller seed", func(t *testing.T) {
		want := int64(42)
		seed, fromCaller, err := ResolveSeed(&want)
		if err != nil {
			t.Fatalf("resolve seed: %v", err)
		}
		if seed != want || !fromCaller {
			t.Fatalf("expected caller seed %d, got %d (fromCaller=%v)", want, seed, fromCaller)
		}
	})

	t.Run("generated seed", func(t *testing.T) {
		_, fromCaller, err := ResolveSeed(nil)
		if err != nil {
			t.Fatalf("resolve seed: %v", err)
		}
		if fromCaller {
			t.Fatal("expected generated seed")
		}
	})
}
