package smooth

// Apply filters input with coefficient alpha, starting from initialOutput,
// and returns a new slice of the same length:
//
//	out[0] = α·in[0] + (1−α)·initialOutput
//	out[n] = α·in[n] + (1−α)·out[n−1]
//
// An empty input yields an empty, non-nil output. input is not modified.
func Apply(input []float64, alpha, initialOutput float64) ([]float64, error) {
	if err := ValidateAlpha(alpha); err != nil {
		return nil, err
	}

	out := make([]float64, len(input))
	y := initialOutput
	for n, x := range input {
		y = alpha*x + (1-alpha)*y
		out[n] = y
	}

	return out, nil
}
