package dice

import "math/rand"

// Source is the randomness provider for dice draws.
//
// *math/rand.Rand satisfies Source; tests substitute fixed sequences.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// NewSource returns a deterministic Source for the given seed.
// The same seed and expression always produce the same Outcome.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// rollDie rolls a single die with the provided number of sides.
func rollDie(src Source, sides uint32) int {
	return src.Intn(int(sides)) + 1
}
