package filterbank

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// degenerateMass is the smallest time-domain L1 mass a filter may have
// before normalization.
const degenerateMass = 1e-7

// Morlet returns the frequency response of length n of a Morlet wavelet
// centered at xi (cycles/sample) with width sigma.
//
// The wavelet is a Gabor filter minus a Gaussian lowpass of the same width,
// scaled so that the response vanishes at DC. Both Gaussians are evaluated
// over 2P-1 periods, with P from [AdaptiveP] capped by [WithPMax], and
// periodized back to n bins, which samples the filter in time. The result
// is normalized per [WithNormalization].
func Morlet(n int, xi, sigma float64, opts ...Option) ([]float64, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return morlet(n, xi, sigma, cfg)
}

func morlet(n int, xi, sigma float64, cfg bankConfig) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	p := min(AdaptiveP(sigma, cfg.eps), cfg.pMax)

	freqs := periodGrid(n, p)
	lowFreqs := freqs
	if p == 1 {
		// keep the lowpass continuous around 0 with [-0.5, 0.5)
		lowFreqs = fftFreqs(n)
	}

	gabor := make([]float64, len(freqs))
	for i, f := range freqs {
		gabor[i] = gaussian(f-xi, sigma)
	}
	lowPass := make([]float64, len(lowFreqs))
	for i, f := range lowFreqs {
		lowPass[i] = gaussian(f, sigma)
	}

	periods := 2*p - 1
	gabor, err := Periodize(gabor, periods)
	if err != nil {
		return nil, err
	}
	lowPass, err = Periodize(lowPass, periods)
	if err != nil {
		return nil, err
	}

	kappa := gabor[0] / lowPass[0]
	floats.AddScaled(gabor, -kappa, lowPass)

	return normalize(gabor, cfg.norm)
}

// Gauss returns the frequency response of length n of a Gaussian lowpass
// filter of width sigma, periodized and normalized like [Morlet].
func Gauss(n int, sigma float64, opts ...Option) ([]float64, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	return gauss(n, sigma, cfg)
}

func gauss(n int, sigma float64, cfg bankConfig) ([]float64, error) {
	if err := validateLength(n); err != nil {
		return nil, err
	}
	p := min(AdaptiveP(sigma, cfg.eps), cfg.pMax)

	var freqs []float64
	if p == 1 {
		freqs = fftFreqs(n)
	} else {
		freqs = periodGrid(n, p)
	}

	g := make([]float64, len(freqs))
	for i, f := range freqs {
		g[i] = gaussian(f, sigma)
	}
	g, err := Periodize(g, 2*p-1)
	if err != nil {
		return nil, err
	}
	return normalize(g, cfg.norm)
}

// Periodize folds h into periods consecutive blocks and returns their mean.
// Periodizing a frequency response by 2^k yields the response of the same
// filter on a signal subsampled by 2^k.
func Periodize(h []float64, periods int) ([]float64, error) {
	if periods <= 0 || len(h) == 0 || len(h)%periods != 0 {
		return nil, fmt.Errorf("%w: %d periods over %d bins", ErrInvalidPeriods, periods, len(h))
	}
	n := len(h) / periods
	out := make([]float64, n)
	for p := 0; p < periods; p++ {
		floats.Add(out, h[p*n:(p+1)*n])
	}
	floats.Scale(1/float64(periods), out)
	return out, nil
}

// NormalizingFactor returns the factor that scales the filter with frequency
// response h to unit norm in the time domain.
func NormalizingFactor(h []float64, norm Normalization) (float64, error) {
	mag, err := timeMagnitude(h)
	if err != nil {
		return 0, err
	}
	mass := floats.Sum(mag)
	if mass < degenerateMass {
		return 0, fmt.Errorf("%w: L1 mass %g", ErrDegenerateFilter, mass)
	}

	switch norm {
	case NormL1:
		return 1 / mass, nil
	case NormL2:
		return 1 / math.Sqrt(floats.Dot(mag, mag)), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidOption, norm)
	}
}

func normalize(h []float64, norm Normalization) ([]float64, error) {
	factor, err := NormalizingFactor(h, norm)
	if err != nil {
		return nil, err
	}
	floats.Scale(factor, h)
	return h, nil
}

func gaussian(f, sigma float64) float64 {
	return math.Exp(-(f * f) / (2 * sigma * sigma))
}

// periodGrid returns the frequencies k/n for k in [(1-p)n, pn).
func periodGrid(n, p int) []float64 {
	out := make([]float64, (2*p-1)*n)
	start := (1 - p) * n
	for i := range out {
		out[i] = float64(start+i) / float64(n)
	}
	return out
}

// fftFreqs returns the DFT sample frequencies in FFT order:
// 0, 1/n, ..., (n/2-1)/n, -1/2, ..., -1/n for even n.
func fftFreqs(n int) []float64 {
	out := make([]float64, n)
	half := (n - 1) / 2
	for i := 0; i <= half; i++ {
		out[i] = float64(i) / float64(n)
	}
	for i := half + 1; i < n; i++ {
		out[i] = float64(i-n) / float64(n)
	}
	return out
}
