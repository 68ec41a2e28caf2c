// Package config holds the parameters of the filter plotting command.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-scatter/dsp/scattering/filterbank"
)

// Params are the filter bank and rendering parameters.
//
// LogT, J and Q are the three values the filter factory needs; the rest
// tune the factory and the output and default to the factory's defaults.
type Params struct {
	// LogT is log2 of the signal support T; T must be a power of two.
	LogT int `yaml:"logT"`
	// J is the maximal scale exponent: the widest filter spans 2^J samples.
	J int `yaml:"J"`
	// Q is the number of first-order wavelets per octave.
	Q int `yaml:"Q"`

	RPsi           float64 `yaml:"rPsi"`
	Sigma0         float64 `yaml:"sigma0"`
	Alpha          float64 `yaml:"alpha"`
	PMax           int     `yaml:"pMax"`
	Eps            float64 `yaml:"eps"`
	Criterion      float64 `yaml:"criterionAmplitude"`
	Normalize      string  `yaml:"normalize"`
	MaxSubsampling *int    `yaml:"maxSubsampling"`

	OutDir string `yaml:"outDir"`
	// Format is the plot format: png, svg, pdf, eps, jpg, tif, or html for
	// an interactive page.
	Format string `yaml:"format"`
	// Width and Height are in inches.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// LPSum also renders the Littlewood-Paley sums.
	LPSum bool `yaml:"lpSum"`
}

// Default returns the parameters of the filter bank tutorial:
// T = 2^13, J = 5, Q = 8.
func Default() Params {
	return Params{
		LogT:      13,
		J:         5,
		Q:         8,
		RPsi:      0.7071067811865476,
		Sigma0:    0.1,
		Alpha:     5,
		PMax:      5,
		Eps:       1e-7,
		Criterion: 1e-3,
		Normalize: "l1",
		OutDir:    ".",
		Format:    "png",
		Width:     8,
		Height:    5,
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default value.
func Load(path string) (Params, error) {
	cfg := Default()
	if path == "" {
		return cfg, errors.New("config path cannot be empty")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

var formats = map[string]bool{
	"png": true, "svg": true, "pdf": true, "eps": true,
	"jpg": true, "jpeg": true, "tif": true, "tiff": true, "html": true,
}

// Validate checks the rendering parameters and the filter options.
// The factory reports invalid LogT, J or Q itself.
func (p Params) Validate() error {
	if !formats[strings.ToLower(p.Format)] {
		return fmt.Errorf("unsupported plot format %q", p.Format)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("plot size must be positive: %gx%g", p.Width, p.Height)
	}
	if p.OutDir == "" {
		return errors.New("output directory cannot be empty")
	}
	if _, err := p.FilterOptions(); err != nil {
		return err
	}
	return nil
}

// FilterOptions maps the tuning parameters to filter bank options.
func (p Params) FilterOptions() ([]filterbank.Option, error) {
	norm, err := filterbank.ParseNormalization(p.Normalize)
	if err != nil {
		return nil, err
	}
	opts := []filterbank.Option{
		filterbank.WithRPsi(p.RPsi),
		filterbank.WithSigma0(p.Sigma0),
		filterbank.WithAlpha(p.Alpha),
		filterbank.WithPMax(p.PMax),
		filterbank.WithEps(p.Eps),
		filterbank.WithCriterionAmplitude(p.Criterion),
		filterbank.WithNormalization(norm),
	}
	if p.MaxSubsampling != nil {
		opts = append(opts, filterbank.WithMaxSubsampling(*p.MaxSubsampling))
	}
	return opts, nil
}
