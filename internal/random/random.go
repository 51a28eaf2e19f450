// Package random provides the injectable source of randomness shared by line
// selection, judging and matchmaking.
package random

import (
	"math/rand/v2"
)

// Source is the single capability the game needs from a random number
// generator. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// New returns a deterministic Source seeded with seed. Two sources built from
// the same seed produce identical sequences.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FreshSeed returns an unpredictable seed for runs that did not ask for one.
func FreshSeed() uint64 {
	return rand.Uint64()
}

// Between returns a uniform integer in [lo, hi], inclusive of both bounds.
func Between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo+1)
}

// Pair returns two distinct indexes in [0, n), drawn uniformly without
// replacement. n must be at least 2.
func Pair(src Source, n int) (int, int) {
	i := src.IntN(n)
	j := src.IntN(n - 1)
	if j >= i {
		j++
	}
	return i, j
}
