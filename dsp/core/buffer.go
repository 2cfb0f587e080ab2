package core

// EnsureLen returns buf resized to n samples, reallocating only when the
// capacity is too small. Contents beyond the old length are unspecified.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Fill sets every element of buf to value.
func Fill(buf []float64, value float64) {
	for i := range buf {
		buf[i] = value
	}
}
