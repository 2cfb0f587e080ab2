// Package settling measures how quickly a smoothed step response reaches
// its final value.
//
// [Time] is the basic query: the first offset after the step onset at which
// the output reaches a threshold fraction of the final value. A window too
// short to reach the threshold is a normal outcome and is reported through
// [Offset.Reached], never as a negative or NaN index.
//
// [Drive] and [Sweep] build the synthetic step, run the exponential smoother
// for a set of coefficients and collect the responses or the settling rows
// used for reporting.
//
// # Usage
//
//	rows, err := settling.Sweep(settling.DefaultConfig(), []float64{0.3, 0.46})
//	for _, r := range rows {
//		fmt.Println(r.Alpha, r.Times[0], r.Times[1], r.TimeConstant)
//	}
package settling
