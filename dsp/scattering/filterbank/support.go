package filterbank

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// TemporalSupport returns the number of samples on each side of the origin
// that hold all but criterion of the L1 mass of the filter with frequency
// response h.
//
// The support is the smallest n such that sum_{t >= n}^{N/2-1} |h[t]| is at
// most criterion, plus one. When no such n exists the filter is wider than
// half its support: N/2 is returned with truncated set, and convolutions
// with it will see border effects.
func TemporalSupport(h []float64, criterion float64) (n int, truncated bool, err error) {
	if err := validateLength(len(h)); err != nil {
		return 0, false, err
	}
	mag, err := timeMagnitude(h)
	if err != nil {
		return 0, false, err
	}

	half := len(h) / 2
	first := half
	residual := 0.0
	for t := half - 1; t >= 0; t-- {
		residual += mag[t]
		if residual > criterion {
			break
		}
		first = t
	}
	if first == half {
		return half, true, nil
	}
	return first + 1, false, nil
}

// TemporalWidth estimates the averaging width T of a Gaussian lowpass filter
// built as Gauss(N, sigma0/T), in samples, for inputs of n samples.
//
// phi averages globally over n samples, and n is returned, once its response
// at the lowest nonzero frequency 1/n falls under criterion times the DC
// gain, or once the estimated width exceeds n/2. Otherwise the width is
// recovered from the frequency decay: at the first bin k whose response falls
// under exp(-1/2) of the DC gain, sigma = (k/N)/sqrt(-2 ln r). A zero n uses
// len(phi).
func TemporalWidth(phi []float64, n int, sigma0, criterion float64) int {
	size := len(phi)
	if n <= 0 {
		n = size
	}
	if size == 0 || phi[0] <= 0 {
		return n
	}
	if k := max(1, int(math.Round(float64(size)/float64(n)))); k <= size/2 &&
		math.Abs(phi[k]) < criterion*phi[0] {
		return n
	}

	threshold := math.Exp(-0.5)
	for k := 1; k <= size/2; k++ {
		r := phi[k] / phi[0]
		if r > threshold {
			continue
		}
		if r <= 0 {
			return 1
		}
		f := float64(k) / float64(size)
		sigma := f / math.Sqrt(-2*math.Log(r))
		width := int(math.Round(sigma0 / sigma))
		switch {
		case width > n/2:
			return n
		case width < 1:
			return 1
		default:
			return width
		}
	}
	// never decays: narrower than a sample
	return 1
}

// LittlewoodPaley returns the sum of squared responses, at resolution level,
// of every filter computed at that level. It returns nil if none is.
//
// For a bank that tiles the spectrum the sum stays bounded away from zero
// between the lowest and highest wavelet peaks.
func LittlewoodPaley(filters []Filter, level int) []float64 {
	var sum, sq []float64
	for i := range filters {
		h := filters[i].At(level)
		if h == nil {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(h))
			sq = make([]float64, len(h))
		}
		if len(h) != len(sum) {
			continue
		}
		vecmath.MulBlock(sq, h, h)
		floats.Add(sum, sq)
	}
	return sum
}
