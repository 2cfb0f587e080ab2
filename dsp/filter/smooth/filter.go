package smooth

import "github.com/cwbudde/algo-smooth/dsp/core"

// Filter is a streaming exponential smoother. It owns a single state value,
// the previous output, which starts at the configured initial output.
//
// A Filter is not safe for concurrent use.
type Filter struct {
	alpha   float64
	initial float64
	y       float64
}

// Option configures a Filter.
type Option func(*Filter)

// WithInitialOutput sets the value the state starts from and returns to on
// Reset. The default is 0.
func WithInitialOutput(v float64) Option {
	return func(f *Filter) {
		f.initial = v
	}
}

// New returns a Filter with coefficient alpha. It fails with ErrInvalidAlpha
// when alpha is outside (0, 1].
func New(alpha float64, opts ...Option) (*Filter, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return nil, err
	}

	f := &Filter{alpha: alpha}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	f.y = f.initial

	return f, nil
}

// Alpha returns the current coefficient.
func (f *Filter) Alpha() float64 { return f.alpha }

// SetAlpha changes the coefficient without touching the state.
func (f *Filter) SetAlpha(alpha float64) error {
	if err := ValidateAlpha(alpha); err != nil {
		return err
	}
	f.alpha = alpha
	return nil
}

// ProcessSample filters one sample and returns the new output. Outputs
// below 1e-30 in magnitude are flushed to zero; ProcessBlock and
// ProcessBlockTo apply the same rule per sample.
func (f *Filter) ProcessSample(x float64) float64 {
	f.y = core.FlushDenormals(f.alpha*x + (1-f.alpha)*f.y)
	return f.y
}

// ProcessBlock filters buf in place. Zero-alloc.
func (f *Filter) ProcessBlock(buf []float64) {
	a, b := f.alpha, 1-f.alpha
	y := f.y
	for i, x := range buf {
		y = core.FlushDenormals(a*x + b*y)
		buf[i] = y
	}
	f.y = y
}

// ProcessBlockTo filters src into dst, growing dst if needed, and returns
// the resized dst. src is left untouched.
func (f *Filter) ProcessBlockTo(dst, src []float64) []float64 {
	dst = core.EnsureLen(dst, len(src))
	a, b := f.alpha, 1-f.alpha
	y := f.y
	for i, x := range src {
		y = core.FlushDenormals(a*x + b*y)
		dst[i] = y
	}
	f.y = y
	return dst
}

// Reset returns the state to the initial output.
func (f *Filter) Reset() {
	f.y = f.initial
}

// State returns the previous output.
func (f *Filter) State() float64 { return f.y }

// SetState overwrites the previous output.
func (f *Filter) SetState(y float64) { f.y = y }
