package trivia

import "math/rand/v2"

// Rand supplies uniform random integers for quiz selection. The engine takes
// it as a dependency so tests can substitute a deterministic source.
type Rand interface {
	// IntN returns a uniform value in [0, n). n must be > 0.
	IntN(n int) int
}

type systemRand struct{}

func (systemRand) IntN(n int) int {
	return rand.IntN(n)
}

// NewRand returns a Rand backed by the runtime's seeded generator.
func NewRand() Rand {
	return systemRand{}
}
