package game

import (
	"math/rand"
	"time"
)

// Rand is the random source every simulation step draws from.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
}

// NewTimeRand returns a source seeded from the wall clock, for interactive runs.
func NewTimeRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

// uniform returns a draw from U(-r, r).
func uniform(rng Rand, r float64) float64 {
	return -r + 2*r*rng.Float64()
}
