package settling

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
)

// Errors returned by settling-time queries.
var (
	ErrInvalidThreshold = errors.New("settling: threshold must be in (0, 1)")
	ErrInvalidOnset     = errors.New("settling: onset must be >= 0")
	ErrFlatStep         = errors.New("settling: step height equals baseline")
	ErrUnreachable      = errors.New("settling: threshold not reachable in a representable offset")
)

const (
	maxPredictOffset = math.MaxInt32
	maxRefineSteps   = 8
)

// Offset is a sample count measured from the step onset. Reached is false
// when the output never crossed the threshold inside the observed window;
// Samples is meaningless in that case.
type Offset struct {
	Samples int
	Reached bool
}

// String returns the offset in samples, or "N/A" if it was not reached.
func (o Offset) String() string {
	if !o.Reached {
		return "N/A"
	}
	return strconv.Itoa(o.Samples)
}

func validateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold <= 0 || threshold >= 1 {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	return nil
}

// Time returns the smallest k >= 0 with output[onset+k] >= threshold. An
// onset at or past the end of output gives an unreached Offset.
func Time(output []float64, onset int, threshold float64) (Offset, error) {
	if err := validateThreshold(threshold); err != nil {
		return Offset{}, err
	}
	if onset < 0 {
		return Offset{}, fmt.Errorf("%w: %d", ErrInvalidOnset, onset)
	}
	return firstAtOrAbove(output, onset, threshold), nil
}

func firstAtOrAbove(output []float64, onset int, level float64) Offset {
	for i := onset; i < len(output); i++ {
		if output[i] >= level {
			return Offset{Samples: i - onset, Reached: true}
		}
	}
	return Offset{}
}

// Predict returns the settling offset of an unbounded unit step response
// starting from zero: the smallest k with 1 − (1−α)^(k+1) >= threshold.
// Coefficients so small that the offset exceeds MaxInt32 samples, or that
// 1−α rounds to 1, fail with ErrUnreachable.
func Predict(alpha, threshold float64) (int, error) {
	if err := smooth.ValidateAlpha(alpha); err != nil {
		return 0, err
	}
	if err := validateThreshold(threshold); err != nil {
		return 0, err
	}
	if alpha == 1 {
		return 0, nil
	}

	// 1−α rounds to 1 for tiny α, so take the logarithm of 1−α via Log1p.
	ratio := math.Log1p(-threshold) / math.Log1p(-alpha)
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) || ratio > maxPredictOffset {
		return 0, fmt.Errorf("%w: alpha %v, threshold %v", ErrUnreachable, alpha, threshold)
	}

	reached := func(k int) bool {
		return 1-math.Pow(1-alpha, float64(k+1)) >= threshold
	}

	k := max(int(math.Ceil(ratio))-1, 0)
	// The logarithm ratio can land a sample off at exact boundaries.
	for i := 0; i < maxRefineSteps && k > 0 && reached(k-1); i++ {
		k--
	}
	for i := 0; !reached(k); i++ {
		if i == maxRefineSteps {
			return 0, fmt.Errorf("%w: alpha %v, threshold %v", ErrUnreachable, alpha, threshold)
		}
		k++
	}

	return k, nil
}
