package filterbank

import (
	"fmt"
	"math"
)

// Normalization selects the time-domain norm each filter is scaled to unity in.
type Normalization int

const (
	// NormL1 scales filters to unit L1 norm. Lowpass filters then have a
	// DC gain of exactly 1 and no response exceeds 1.
	NormL1 Normalization = iota

	// NormL2 scales filters to unit energy.
	NormL2
)

// String returns the conventional lower-case name.
func (n Normalization) String() string {
	switch n {
	case NormL1:
		return "l1"
	case NormL2:
		return "l2"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization maps "l1" and "l2" to their Normalization.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "l1", "L1", "":
		return NormL1, nil
	case "l2", "L2":
		return NormL2, nil
	default:
		return 0, fmt.Errorf("%w: normalization %q (want l1 or l2)", ErrInvalidOption, s)
	}
}

const (
	defaultSigma0    = 0.1
	defaultAlpha     = 5.0
	defaultPMax      = 5
	defaultEps       = 1e-7
	defaultCriterion = 1e-3

	// autoSubsampling derives the per-filter subsampling from the bank itself.
	autoSubsampling = -1
)

var defaultRPsi = math.Sqrt(0.5)

type bankConfig struct {
	rPsi      float64
	criterion float64
	norm      Normalization
	maxSub    int
	sigma0    float64
	alpha     float64
	pMax      int
	eps       float64
}

func defaultBankConfig() bankConfig {
	return bankConfig{
		rPsi:      defaultRPsi,
		criterion: defaultCriterion,
		norm:      NormL1,
		maxSub:    autoSubsampling,
		sigma0:    defaultSigma0,
		alpha:     defaultAlpha,
		pMax:      defaultPMax,
		eps:       defaultEps,
	}
}

// Option configures filter construction.
type Option func(*bankConfig)

// WithRPsi sets the relative height at which neighbouring dyadic wavelets
// intersect. Must be in (0, 1); defaults to sqrt(0.5).
func WithRPsi(r float64) Option {
	return func(cfg *bankConfig) { cfg.rPsi = r }
}

// WithCriterionAmplitude sets the L1 tail mass tolerated when measuring the
// temporal support of phi. Defaults to 1e-3.
func WithCriterionAmplitude(c float64) Option {
	return func(cfg *bankConfig) { cfg.criterion = c }
}

// WithNormalization selects the filter norm. Defaults to [NormL1].
func WithNormalization(n Normalization) Option {
	return func(cfg *bankConfig) { cfg.norm = n }
}

// WithMaxSubsampling fixes the number of periodized levels computed for phi
// and psi2 instead of deriving it from the subsampling factors of the bank.
func WithMaxSubsampling(k int) Option {
	return func(cfg *bankConfig) { cfg.maxSub = k }
}

// WithSigma0 sets the lowpass width at scale 1; phi has width sigma0/2^J.
// Defaults to 0.1.
func WithSigma0(s float64) Option {
	return func(cfg *bankConfig) { cfg.sigma0 = s }
}

// WithAlpha sets how many sigmas above xi a filter is considered to extend
// when choosing its maximal subsampling. Defaults to 5.
func WithAlpha(a float64) Option {
	return func(cfg *bankConfig) { cfg.alpha = a }
}

// WithPMax caps the number of periods used to approximate the continuous
// Gaussians before periodization. Defaults to 5.
func WithPMax(p int) Option {
	return func(cfg *bankConfig) { cfg.pMax = p }
}

// WithEps sets the Gaussian truncation level used to choose the number of
// periods. Defaults to 1e-7.
func WithEps(eps float64) Option {
	return func(cfg *bankConfig) { cfg.eps = eps }
}

func buildConfig(opts []Option) (bankConfig, error) {
	cfg := defaultBankConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return cfg, cfg.validate()
}

func (c bankConfig) validate() error {
	if c.pMax < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPMax, c.pMax)
	}
	switch {
	case !(c.rPsi > 0 && c.rPsi < 1):
		return fmt.Errorf("%w: r_psi must be in (0,1): %g", ErrInvalidOption, c.rPsi)
	case !(c.criterion > 0):
		return fmt.Errorf("%w: criterion amplitude must be > 0: %g", ErrInvalidOption, c.criterion)
	case !(c.sigma0 > 0):
		return fmt.Errorf("%w: sigma0 must be > 0: %g", ErrInvalidOption, c.sigma0)
	case !(c.alpha > 0):
		return fmt.Errorf("%w: alpha must be > 0: %g", ErrInvalidOption, c.alpha)
	case !(c.eps > 0 && c.eps < 1):
		return fmt.Errorf("%w: eps must be in (0,1): %g", ErrInvalidOption, c.eps)
	case c.maxSub < autoSubsampling:
		return fmt.Errorf("%w: max subsampling must be >= 0: %d", ErrInvalidOption, c.maxSub)
	case c.norm != NormL1 && c.norm != NormL2:
		return fmt.Errorf("%w: %v", ErrInvalidOption, c.norm)
	}
	return nil
}
