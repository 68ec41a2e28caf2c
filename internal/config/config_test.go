package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-scatter/dsp/scattering/filterbank"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 13, cfg.LogT)
	assert.Equal(t, 5, cfg.J)
	assert.Equal(t, 8, cfg.Q)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
logT: 10
Q: 4
format: svg
maxSubsampling: 2
lpSum: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.LogT)
	assert.Equal(t, 5, cfg.J, "J keeps its default")
	assert.Equal(t, 4, cfg.Q)
	assert.Equal(t, "svg", cfg.Format)
	assert.True(t, cfg.LPSum)
	require.NotNil(t, cfg.MaxSubsampling)
	assert.Equal(t, 2, *cfg.MaxSubsampling)
	assert.InDelta(t, 0.1, cfg.Sigma0, 1e-15)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "logT: [1, 2"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"format", func(p *Params) { p.Format = "gif" }},
		{"width", func(p *Params) { p.Width = 0 }},
		{"height", func(p *Params) { p.Height = -1 }},
		{"out dir", func(p *Params) { p.OutDir = "" }},
		{"normalize", func(p *Params) { p.Normalize = "max" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestFilterOptionsBuildBank(t *testing.T) {
	cfg := Default()
	cfg.LogT, cfg.J, cfg.Q = 9, 3, 2
	sub := 1
	cfg.MaxSubsampling = &sub

	opts, err := cfg.FilterOptions()
	require.NoError(t, err)

	b, err := filterbank.New(cfg.LogT, cfg.J, cfg.Q, opts...)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Phi.MaxSubsampling())

	// default parameters reproduce the factory defaults exactly
	def, err := filterbank.New(cfg.LogT, cfg.J, cfg.Q, filterbank.WithMaxSubsampling(1))
	require.NoError(t, err)
	assert.Equal(t, def.Phi.Levels, b.Phi.Levels)
	assert.Equal(t, def.TMaxPhi, b.TMaxPhi)
}
