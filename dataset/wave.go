package dataset

import "math/rand"

// Fixture parameters for NoisyWave.
const (
	waveLow    = 1.0 // base level of the low phase
	waveHigh   = 3.0 // base level of the high phase
	wavePeriod = 6   // samples per full low/high cycle
	waveNoise  = 5.0 // uniform noise amplitude added to every sample
)

// NoisyWave returns a length-n square wave with additive uniform noise: the
// base level alternates between 1 and 3 every three samples (period six),
// and each sample adds an independent uniform draw from [0, 5).
//
// The sequence is deterministic per (n, seed), which makes it suitable as a
// golden fixture for periodicity analysis with window specs such as
// "9xxxxx9xxxxx9". Returns nil for n < 1.
func NoisyWave(n int, seed int64) []float64 {
	if n < 1 {
		return nil
	}

	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		base := waveLow
		if i%wavePeriod >= wavePeriod/2 {
			base = waveHigh
		}
		out[i] = base + rng.Float64()*waveNoise
	}

	return out
}
