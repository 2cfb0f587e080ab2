package settling

import "fmt"

// Metrics summarises a step response.
type Metrics struct {
	T10       Offset  // first reach of 10%
	T90       Offset  // first reach of 90%
	RiseTime  Offset  // T90 − T10, reached only if both are
	T95       Offset  // first reach of 95%
	T99       Offset  // first reach of 99%
	Overshoot float64 // peak excursion past the final value, as a fraction of the step
	Monotonic bool    // no sample after onset moves away from the final value
}

// Analyze computes Metrics for a step response described by cfg. Falling
// steps (Height below Baseline) are measured the same way.
func Analyze(output []float64, cfg Config) (Metrics, error) {
	if cfg.Onset < 0 {
		return Metrics{}, fmt.Errorf("%w: %d", ErrInvalidOnset, cfg.Onset)
	}

	p, err := cfg.fraction(output)
	if err != nil {
		return Metrics{}, err
	}

	m := Metrics{
		T10:       firstAtOrAbove(p, cfg.Onset, 0.10),
		T90:       firstAtOrAbove(p, cfg.Onset, 0.90),
		T95:       firstAtOrAbove(p, cfg.Onset, 0.95),
		T99:       firstAtOrAbove(p, cfg.Onset, 0.99),
		Monotonic: true,
	}
	if m.T10.Reached && m.T90.Reached {
		m.RiseTime = Offset{Samples: m.T90.Samples - m.T10.Samples, Reached: true}
	}

	for i := cfg.Onset; i < len(p); i++ {
		if p[i]-1 > m.Overshoot {
			m.Overshoot = p[i] - 1
		}
		if i > cfg.Onset && p[i] < p[i-1] {
			m.Monotonic = false
		}
	}

	return m, nil
}
