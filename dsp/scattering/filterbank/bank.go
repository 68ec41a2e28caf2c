package filterbank

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Filter is one scattering filter together with its spectral parameters.
type Filter struct {
	Xi    float64 // center frequency in cycles/sample (0 for phi)
	Sigma float64 // frequency-domain width
	J     int     // maximal dyadic subsampling after this filter

	// Levels[k] is the real frequency response at support N/2^k.
	Levels [][]float64
}

// At returns the response at resolution level k, or nil if the filter was
// not computed at that level.
func (f *Filter) At(k int) []float64 {
	if k < 0 || k >= len(f.Levels) {
		return nil
	}
	return f.Levels[k]
}

// MaxSubsampling returns the coarsest level the filter was computed at.
func (f *Filter) MaxSubsampling() int { return len(f.Levels) - 1 }

// Peak returns the bin and value of the largest full-resolution response.
func (f *Filter) Peak() (bin int, value float64) {
	if len(f.Levels) == 0 || len(f.Levels[0]) == 0 {
		return 0, 0
	}
	bin = floats.MaxIdx(f.Levels[0])
	return bin, f.Levels[0][bin]
}

// Bank is a complete 1D scattering filter bank.
type Bank struct {
	LogN int // log2 of the full-resolution support N
	J    int // maximal scale exponent
	Q    int // first-order wavelets per octave

	Phi  Filter   // lowpass
	Psi1 []Filter // first-order wavelets, decreasing Xi
	Psi2 []Filter // second-order wavelets, decreasing Xi

	// TMaxPhi is the half-width of phi in samples beyond which its L1 tail
	// falls under the criterion amplitude; padding by this much avoids
	// boundary effects at full resolution.
	TMaxPhi int

	// BorderEffects reports that phi never decays below the criterion
	// within N/2 samples.
	BorderEffects bool
}

// N returns the full-resolution support size.
func (b *Bank) N() int { return 1 << b.LogN }

// Frequencies returns the normalized frequency k/N of every full-resolution bin.
func (b *Bank) Frequencies() []float64 {
	n := b.N()
	out := make([]float64, n)
	floats.Span(out, 0, float64(n-1)/float64(n))
	return out
}

// New builds the scattering filter bank for signals of support 2^logN with
// maximal scale 2^j and q first-order wavelets per octave.
//
// First-order wavelets are computed at full resolution only. Second-order
// wavelets and phi are also periodized for every subsampling their input may
// have been reduced by: a second-order wavelet of subsampling j2 follows
// first-order outputs subsampled by at most max{j1 < j2}, and phi follows
// outputs of either order. Periodizations by more than N are skipped, so for
// small supports MaxSubsampling may stop at logN below that bound.
//
// phi is always L1-normalized, giving it unit DC gain; WithNormalization
// applies to the wavelets.
func New(logN, j, q int, opts ...Option) (*Bank, error) {
	cfg, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := validateShape(logN, j, q); err != nil {
		return nil, err
	}

	cal := calibrate(j, q, cfg)
	n := 1 << logN

	b := &Bank{
		LogN: logN,
		J:    j,
		Q:    q,
		Psi1: make([]Filter, 0, len(cal.Xi1)),
		Psi2: make([]Filter, 0, len(cal.Xi2)),
	}

	for i, j2 := range cal.J2 {
		maxSub := cfg.maxSub
		if maxSub == autoSubsampling {
			maxSub = maxBelow(cal.J1, j2)
		}
		psi, err := morlet(n, cal.Xi2[i], cal.Sigma2[i], cfg)
		if err != nil {
			return nil, fmt.Errorf("second-order filter %d: %w", i, err)
		}
		levels, err := subsampledLevels(psi, maxSub)
		if err != nil {
			return nil, fmt.Errorf("second-order filter %d: %w", i, err)
		}
		b.Psi2 = append(b.Psi2, Filter{Xi: cal.Xi2[i], Sigma: cal.Sigma2[i], J: j2, Levels: levels})
	}

	for i, j1 := range cal.J1 {
		psi, err := morlet(n, cal.Xi1[i], cal.Sigma1[i], cfg)
		if err != nil {
			return nil, fmt.Errorf("first-order filter %d: %w", i, err)
		}
		b.Psi1 = append(b.Psi1, Filter{Xi: cal.Xi1[i], Sigma: cal.Sigma1[i], J: j1, Levels: [][]float64{psi}})
	}

	maxSubPhi := cfg.maxSub
	if maxSubPhi == autoSubsampling {
		maxSubPhi = max(maxInt(cal.J1), maxInt(cal.J2))
	}
	phiCfg := cfg
	phiCfg.norm = NormL1
	phi, err := gauss(n, cal.SigmaLow, phiCfg)
	if err != nil {
		return nil, fmt.Errorf("lowpass filter: %w", err)
	}
	phiLevels, err := subsampledLevels(phi, maxSubPhi)
	if err != nil {
		return nil, fmt.Errorf("lowpass filter: %w", err)
	}
	b.Phi = Filter{Xi: 0, Sigma: cal.SigmaLow, J: 0, Levels: phiLevels}

	b.TMaxPhi, b.BorderEffects, err = TemporalSupport(phi, cfg.criterion)
	if err != nil {
		return nil, fmt.Errorf("lowpass support: %w", err)
	}
	return b, nil
}

// subsampledLevels returns level0 followed by its periodizations by 2^k for
// k = 1..maxSub. Levels that would be shorter than one bin are dropped.
func subsampledLevels(level0 []float64, maxSub int) ([][]float64, error) {
	levels := make([][]float64, 1, maxSub+1)
	levels[0] = level0
	for k := 1; k <= maxSub; k++ {
		periods := 1 << k
		if periods > len(level0) {
			break
		}
		lvl, err := Periodize(level0, periods)
		if err != nil {
			return nil, err
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

// maxBelow returns the largest element of js strictly below limit, or 0.
func maxBelow(js []int, limit int) int {
	best := 0
	found := false
	for _, v := range js {
		if v < limit && (!found || v > best) {
			best = v
			found = true
		}
	}
	return best
}

func maxInt(js []int) int {
	best := 0
	for i, v := range js {
		if i == 0 || v > best {
			best = v
		}
	}
	return best
}
