package testutil

import "math"

// GaussianResponse returns a length-n frequency response with a Gaussian
// bump of unit height at normalized frequency center (cycles/sample).
// Bin k sits at k/n; bins past n/2 mirror the negative frequencies.
func GaussianResponse(n int, center, sigma float64) []float64 {
	out := make([]float64, n)
	for k := range out {
		f := float64(k) / float64(n)
		if k > n/2 {
			f -= 1
		}
		d := f - center
		out[k] = math.Exp(-d * d / (2 * sigma * sigma))
	}
	return out
}

// Impulse returns a response that is 1 at bin pos and 0 elsewhere.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
