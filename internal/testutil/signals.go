package testutil

import "math/rand"

// UnitStep returns length samples that are 0 before onset and 1 from onset on.
func UnitStep(length, onset int) []float64 {
	out := make([]float64, length)
	for i := max(onset, 0); i < length; i++ {
		out[i] = 1
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
