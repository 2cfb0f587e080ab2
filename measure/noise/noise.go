// Package noise measures how much the exponential smoother attenuates
// broadband noise.
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/filter/smooth"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by Reduction.
var (
	ErrShortInput   = errors.New("noise: input too short")
	ErrZeroVariance = errors.New("noise: input has zero variance")
)

// transientTimeConstants is how many time constants of output are dropped
// before measuring, so the zero initial state does not bias the variance.
const transientTimeConstants = 10

// Reduction filters input with alpha and returns the ratio of output to
// input variance measured after the start-up transient. For white noise it
// approaches smooth.NoiseGain(alpha).
func Reduction(alpha float64, input []float64) (float64, error) {
	tau, err := smooth.TimeConstant(alpha)
	if err != nil {
		return 0, err
	}

	// Compare in float64 so a huge time constant cannot overflow int.
	skipF := math.Ceil(transientTimeConstants * tau)
	if skipF > float64(len(input)-2) {
		return 0, fmt.Errorf("%w: %d samples, need more than %g", ErrShortInput, len(input), skipF+1)
	}
	skip := int(skipF)

	out, err := smooth.Apply(input, alpha, 0)
	if err != nil {
		return 0, err
	}

	inVar := stat.Variance(input[skip:], nil)
	if inVar == 0 {
		return 0, ErrZeroVariance
	}

	return stat.Variance(out[skip:], nil) / inVar, nil
}
