package smooth

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Response returns the complex frequency response
//
//	H(e^jw) = α / (1 − (1−α)·e^−jw)
//
// at freqHz for the given sample rate.
func Response(alpha, freqHz, sampleRate float64) (complex128, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return 0, err
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate %v", ErrInvalidFrequency, sampleRate)
	}

	w := 2 * math.Pi * freqHz / sampleRate
	den := 1 - complex(1-alpha, 0)*cmplx.Exp(complex(0, -w))

	return complex(alpha, 0) / den, nil
}

// MagnitudeDB returns 20*log10|H(f)|.
func MagnitudeDB(alpha, freqHz, sampleRate float64) (float64, error) {
	h, err := Response(alpha, freqHz, sampleRate)
	if err != nil {
		return 0, err
	}
	return core.LinearToDB(cmplx.Abs(h)), nil
}

// Phase returns the phase response in radians, in [-pi, pi].
func Phase(alpha, freqHz, sampleRate float64) (float64, error) {
	h, err := Response(alpha, freqHz, sampleRate)
	if err != nil {
		return 0, err
	}
	return cmplx.Phase(h), nil
}

// ImpulseResponse returns the first n samples of h[k] = α·(1−α)^k.
func ImpulseResponse(alpha float64, n int) ([]float64, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("smooth: impulse response length must be >= 0: %d", n)
	}
	if n == 0 {
		return []float64{}, nil
	}

	f := &Filter{alpha: alpha}
	ir := make([]float64, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}

	return ir, nil
}

// StepResponse returns the first n samples of the unit step response
// 1 − (1−α)^(k+1), starting from a zero state.
func StepResponse(alpha float64, n int) ([]float64, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("smooth: step response length must be >= 0: %d", n)
	}

	buf := make([]float64, n)
	core.Fill(buf, 1)
	f := &Filter{alpha: alpha}
	f.ProcessBlock(buf)

	return buf, nil
}

// FFTMagnitude estimates |H| on the bins 0..fftSize/2 from an FFT of the
// impulse response truncated to fftSize samples. The estimate converges to
// the closed form once (1−α)^fftSize is negligible.
func FFTMagnitude(alpha float64, fftSize int) ([]float64, error) {
	if fftSize < 2 {
		return nil, fmt.Errorf("smooth: fft size must be >= 2: %d", fftSize)
	}

	ir, err := ImpulseResponse(alpha, fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("smooth: fft plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("smooth: fft forward: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}
