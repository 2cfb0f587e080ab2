// Package smooth provides the single-pole exponential smoothing filter
//
//	y[n] = α·x[n] + (1−α)·y[n−1]
//
// together with coefficient conversions and response analysis.
//
// [Apply] is the one-shot form over a complete sequence. [Filter] is the
// streaming form with the same recurrence and an explicit state scalar,
// modelled on the biquad Section API (ProcessSample, ProcessBlock, Reset).
//
// The coefficient α must lie in (0, 1]. α = 1 passes the input through
// unchanged; smaller values smooth more and respond more slowly. Values
// outside that range are rejected with [ErrInvalidAlpha] instead of being
// computed, because the recurrence stops being a low-pass filter there.
package smooth
