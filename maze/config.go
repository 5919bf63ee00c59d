package maze

import (
	"math"
	"math/rand"
	"time"
)

// Config describes a maze generation request.
type Config struct {
	Width  int // Width is the base number of cells along x.
	Height int // Height is the base number of cells along y.
	Depth  int // Depth is the base number of cells along z.

	// SizeMultiplier scales every base dimension before the grid is built.
	// Zero means 1. Scaled sizes are rounded half to even.
	SizeMultiplier float64

	Seed int64 // Optional (0 = seeded from the clock)
}

// Dimensions returns the grid dimensions after applying the size multiplier.
func (c Config) Dimensions() (width, height, depth int) {
	m := c.SizeMultiplier
	if m == 0 {
		return c.Width, c.Height, c.Depth
	}
	scale := func(n int) int {
		return int(math.RoundToEven(float64(n) * m))
	}
	return scale(c.Width), scale(c.Height), scale(c.Depth)
}

// ResolveSeed returns the configured seed, drawing one from the clock when unset.
func (c Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// NewRand returns a random source seeded with seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
