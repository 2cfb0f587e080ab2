package settling

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
	"github.com/cwbudde/algo-smooth/dsp/signal"
)

// Config describes the synthetic step stimulus. The stimulus sits at
// Baseline before Onset and at Height from Onset on; the filter starts at
// rest on Baseline.
type Config struct {
	Samples  int     // total length of the stimulus
	Onset    int     // index of the first sample at Height
	Baseline float64 // level before the step and initial filter output
	Height   float64 // final value of the step
}

// DefaultConfig is a unit step at sample 10 of 50, starting from rest.
func DefaultConfig() Config {
	return Config{
		Samples: 50,
		Onset:   10,
		Height:  1,
	}
}

// Response is the filtered step for one coefficient.
type Response struct {
	Alpha  float64
	Output []float64
}

// Drive filters the configured step once per coefficient. Every
// coefficient is validated before any filtering takes place.
func Drive(cfg Config, alphas []float64) ([]Response, error) {
	for _, a := range alphas {
		if err := smooth.ValidateAlpha(a); err != nil {
			return nil, err
		}
	}

	step, err := signal.NewGenerator().Step(cfg.Onset, cfg.Height-cfg.Baseline, cfg.Samples)
	if err != nil {
		return nil, fmt.Errorf("settling: %w", err)
	}
	if cfg.Baseline != 0 {
		for i := range step {
			step[i] += cfg.Baseline
		}
	}

	out := make([]Response, 0, len(alphas))
	for _, a := range alphas {
		y, err := smooth.Apply(step, a, cfg.Baseline)
		if err != nil {
			return nil, err
		}
		out = append(out, Response{Alpha: a, Output: y})
	}

	return out, nil
}

// fraction maps output to the fraction of the step travelled, 0 at
// Baseline and 1 at Height. For a unit step from zero it is the output
// itself.
func (c Config) fraction(output []float64) ([]float64, error) {
	span := c.Height - c.Baseline
	if span == 0 {
		return nil, ErrFlatStep
	}
	if c.Baseline == 0 && span == 1 {
		return output, nil
	}

	p := make([]float64, len(output))
	for i, y := range output {
		p[i] = (y - c.Baseline) / span
	}
	return p, nil
}
