package filterbank

import (
	"fmt"
	"math"
)

// Calibration holds the spectral parameters of a scattering filter bank
// before any filter is instantiated.
type Calibration struct {
	SigmaLow float64 // width of the lowpass phi

	Xi1    []float64 // first-order center frequencies, decreasing
	Sigma1 []float64
	J1     []int

	Xi2    []float64 // second-order center frequencies, decreasing
	Sigma2 []float64
	J2     []int
}

// Calibrate computes the filter parameters of a bank with maximal scale 2^j
// and q first-order wavelets per octave. Second-order filters always use one
// wavelet per octave.
func Calibrate(j, q int, opts ...Option) (Calibration, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return Calibration{}, err
	}
	if err := validateQ(q); err != nil {
		return Calibration{}, err
	}
	if j < 0 {
		return Calibration{}, fmt.Errorf("%w: %d", ErrInvalidScale, j)
	}
	return calibrate(j, q, cfg), nil
}

func calibrate(j, q int, cfg bankConfig) Calibration {
	sigmaLow := cfg.sigma0 / math.Pow(2, float64(j))
	xi1, sigma1, j1 := computeParams(sigmaLow, q, cfg.rPsi, cfg.alpha)
	xi2, sigma2, j2 := computeParams(sigmaLow, 1, cfg.rPsi, cfg.alpha)
	return Calibration{
		SigmaLow: sigmaLow,
		Xi1:      xi1,
		Sigma1:   sigma1,
		J1:       j1,
		Xi2:      xi2,
		Sigma2:   sigma2,
		J2:       j2,
	}
}

// SigmaPsi returns the bandwidth of a wavelet centered at xi such that two
// wavelets a factor 2^(1/q) apart intersect at r times their peak.
func SigmaPsi(xi float64, q int, r float64) float64 {
	factor := 1 / math.Pow(2, 1/float64(q))
	term1 := (1 - factor) / (1 + factor)
	term2 := 1 / math.Sqrt(2*math.Log(1/r))
	return xi * term1 * term2
}

// XiMax returns the center frequency of the highest wavelet for q wavelets
// per octave.
func XiMax(q int) float64 {
	return math.Max(1/(1+math.Pow(2, 3/float64(q))), 0.35)
}

// MaxDyadicSubsampling returns the largest j such that a filter centered at xi
// with width sigma can be subsampled by 2^j without aliasing, its support
// taken to end at xi + alpha*sigma.
func MaxDyadicSubsampling(xi, sigma, alpha float64) int {
	upper := math.Min(xi+alpha*sigma, 0.5)
	return int(math.Floor(-math.Log2(upper))) - 1
}

// AdaptiveP returns the number of periods over which a Gaussian of width sigma
// must be sampled for its truncation to stay below eps.
func AdaptiveP(sigma, eps float64) int {
	val := math.Sqrt(-2 * sigma * sigma * math.Log(eps))
	return int(math.Ceil(val + 1))
}

// computeParams walks the dyadic wavelets from XiMax down while their width
// exceeds sigmaLow, then fills the remaining band with q-1 linearly spaced
// wavelets of width sigmaLow.
func computeParams(sigmaLow float64, q int, rPsi, alpha float64) (xi, sigma []float64, js []int) {
	xiMax := XiMax(q)
	sigmaMax := SigmaPsi(xiMax, q, rPsi)

	var lastXi float64
	if sigmaMax <= sigmaLow {
		lastXi = sigmaMax
	} else {
		factor := 1 / math.Pow(2, 1/float64(q))
		curXi, curSigma, curJ := xiMax, sigmaMax, 0
		for curSigma > sigmaLow {
			xi = append(xi, curXi)
			sigma = append(sigma, curSigma)
			js = append(js, curJ)

			curXi *= factor
			curSigma *= factor
			curJ = MaxDyadicSubsampling(curXi, curSigma, alpha)
		}
		lastXi = xi[len(xi)-1]
	}

	intermediate := q - 1
	for k := 1; k <= intermediate; k++ {
		factor := float64(intermediate+1-k) / float64(intermediate+1)
		newXi := factor * lastXi
		xi = append(xi, newXi)
		sigma = append(sigma, sigmaLow)
		js = append(js, MaxDyadicSubsampling(newXi, sigmaLow, alpha))
	}
	return xi, sigma, js
}
