package smooth

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by coefficient validation and conversion.
var (
	ErrInvalidAlpha        = errors.New("smooth: alpha must be in (0, 1]")
	ErrInvalidTimeConstant = errors.New("smooth: time constant must be >= 1 sample")
	ErrInvalidFrequency    = errors.New("smooth: cutoff must be in (0, sampleRate/2]")
)

// ValidateAlpha returns ErrInvalidAlpha, wrapped with the offending value,
// unless 0 < alpha <= 1.
func ValidateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidAlpha, alpha)
	}
	return nil
}

// TimeConstant returns the characteristic response time 1/α in samples.
func TimeConstant(alpha float64) (float64, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return 0, err
	}
	return 1 / alpha, nil
}

// AlphaFromTimeConstant is the inverse of TimeConstant.
func AlphaFromTimeConstant(tau float64) (float64, error) {
	if math.IsNaN(tau) || tau < 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidTimeConstant, tau)
	}
	return 1 / tau, nil
}

// AlphaFromCutoff maps a -3 dB style corner frequency to a coefficient using
// the impulse-invariant mapping α = 1 − exp(−2π·fc/fs).
func AlphaFromCutoff(cutoffHz, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return 0, fmt.Errorf("%w: sample rate %v", ErrInvalidFrequency, sampleRate)
	}
	if math.IsNaN(cutoffHz) || cutoffHz <= 0 || cutoffHz > sampleRate/2 {
		return 0, fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidFrequency, cutoffHz, sampleRate)
	}
	return 1 - math.Exp(-2*math.Pi*cutoffHz/sampleRate), nil
}

// CutoffFromAlpha is the inverse of AlphaFromCutoff. α = 1 has no finite
// corner and returns +Inf.
func CutoffFromAlpha(alpha, sampleRate float64) (float64, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return 0, err
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) {
		return 0, fmt.Errorf("%w: sample rate %v", ErrInvalidFrequency, sampleRate)
	}
	if alpha == 1 {
		return math.Inf(1), nil
	}
	return -math.Log(1-alpha) * sampleRate / (2 * math.Pi), nil
}

// NoiseGain returns the ratio of output to input variance for a stationary
// white-noise input, α/(2−α).
func NoiseGain(alpha float64) (float64, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return 0, err
	}
	return alpha / (2 - alpha), nil
}
