package sim

import (
	"image/color"
	"math/rand"
	"time"
)

// Rand is the randomness the simulation consumes. *rand.Rand satisfies it;
// tests inject a seeded one so runs are reproducible.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand returns a seeded source. A zero seed uses the wall clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
}

// randInt returns an integer in [lo, hi], both ends inclusive.
func randInt(r Rand, lo, hi int) int {
	if hi < lo {
		panic("sim: randInt with empty range")
	}
	return lo + r.Intn(hi-lo+1)
}

// randColor returns a fully opaque colour with random channels.
func randColor(r Rand) color.RGBA {
	return color.RGBA{
		R: uint8(r.Intn(256)),
		G: uint8(r.Intn(256)),
		B: uint8(r.Intn(256)),
		A: 255,
	}
}
