package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Generator creates deterministic test stimuli from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used by WhiteNoise.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a generator with both processor and
// signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Step generates a step of the given height: zero before onset and height
// from onset to the end.
func (g *Generator) Step(onset int, height float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("step samples must be > 0: %d", samples)
	}
	if onset < 0 || onset >= samples {
		return nil, fmt.Errorf("step onset must be in [0, %d): %d", samples, onset)
	}
	out := make([]float64, samples)
	core.Fill(out[onset:], height)
	return out, nil
}

// Impulse generates a unit impulse at pos.
func (g *Generator) Impulse(pos, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position must be in [0, %d): %d", samples, pos)
	}
	out := make([]float64, samples)
	out[pos] = 1
	return out, nil
}

// Sine generates amplitude·sin(2π·f·n/fs) at the configured sample rate.
// It is the stimulus for checking the smoother's attenuation against its
// closed-form magnitude response.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if freqHz < 0 || freqHz > g.cfg.SampleRate/2 {
		return nil, fmt.Errorf("sine frequency must be in [0, %g]: %g", g.cfg.SampleRate/2, freqHz)
	}

	out := make([]float64, samples)
	w := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for n := range out {
		out[n] = amplitude * math.Sin(w*float64(n))
	}
	return out, nil
}

// WhiteNoise generates seeded uniform noise in [-amplitude, amplitude), the
// stimulus for variance-reduction measurements.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	switch {
	case samples <= 0:
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	case amplitude < 0:
		return nil, fmt.Errorf("noise amplitude must be >= 0: %g", amplitude)
	}

	rng := rand.New(rand.NewSource(g.seed))
	out := make([]float64, samples)
	for n := range out {
		out[n] = amplitude * (2*rng.Float64() - 1)
	}
	return out, nil
}

// Normalize scales data to targetPeak and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	gain := make([]float64, len(data))
	core.Fill(gain, targetPeak/maxAbs)
	vecmath.MulBlock(out, data, gain)
	return out, nil
}
