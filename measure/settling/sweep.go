package settling

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
	"gonum.org/v1/gonum/floats"
)

// DefaultThresholds are the 95% and 99% settling levels.
var DefaultThresholds = []float64{0.95, 0.99}

// Row is the settling summary for one coefficient. Times is aligned with
// the thresholds passed to Sweep.
type Row struct {
	Alpha        float64
	Times        []Offset
	TimeConstant float64 // 1/α in samples
}

// Sweep computes a Row per coefficient. Without thresholds it uses
// DefaultThresholds. Out-of-range coefficients and thresholds are rejected
// before anything is filtered.
func Sweep(cfg Config, alphas []float64, thresholds ...float64) ([]Row, error) {
	if len(thresholds) == 0 {
		thresholds = DefaultThresholds
	}
	for _, th := range thresholds {
		if err := validateThreshold(th); err != nil {
			return nil, err
		}
	}

	responses, err := Drive(cfg, alphas)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(responses))
	for _, r := range responses {
		p, err := cfg.fraction(r.Output)
		if err != nil {
			return nil, err
		}

		tau, err := smooth.TimeConstant(r.Alpha)
		if err != nil {
			return nil, err
		}

		row := Row{
			Alpha:        r.Alpha,
			Times:        make([]Offset, len(thresholds)),
			TimeConstant: tau,
		}
		for i, th := range thresholds {
			row.Times[i] = firstAtOrAbove(p, cfg.Onset, th)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Linspace returns n evenly spaced values from start to stop inclusive.
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("settling: linspace needs at least 2 points: %d", n)
	}
	out := floats.Span(make([]float64, n), start, stop)
	// Pin the endpoint so a grid ending at 1 stays a valid coefficient.
	out[n-1] = stop
	return out, nil
}
