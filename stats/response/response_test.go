package response

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-scatter/internal/testutil"
)

const tolerance = 1e-9

func TestMeasureEmpty(t *testing.T) {
	s := Measure(nil)
	if s.Size != 0 || s.Peak != 0 {
		t.Fatalf("Measure(nil) = %+v", s)
	}
	if !math.IsInf(s.PeakDB, -1) {
		t.Fatalf("PeakDB = %v, want -Inf", s.PeakDB)
	}
}

func TestMeasureSingleBin(t *testing.T) {
	s := Measure([]float64{-0.5})
	if s.Size != 1 || s.DC != 0.5 || s.Peak != 0.5 || s.Energy != 0.25 {
		t.Fatalf("Measure = %+v", s)
	}
	if math.Abs(s.PeakDB-20*math.Log10(0.5)) > tolerance {
		t.Fatalf("PeakDB = %v", s.PeakDB)
	}
}

func TestMeasureGaussianBump(t *testing.T) {
	const (
		n      = 1024
		center = 0.25
		sigma  = 0.02
	)
	h := testutil.GaussianResponse(n, center, sigma)
	s := Measure(h)

	if s.Size != n {
		t.Fatalf("Size = %d, want %d", s.Size, n)
	}
	if s.PeakBin != 256 || math.Abs(s.PeakFreq-center) > tolerance {
		t.Fatalf("peak at bin %d (%v), want 256 (%v)", s.PeakBin, s.PeakFreq, center)
	}
	if math.Abs(s.Peak-1) > tolerance || math.Abs(s.PeakDB) > tolerance {
		t.Fatalf("peak = %v (%v dB), want 1 (0 dB)", s.Peak, s.PeakDB)
	}
	if math.Abs(s.Centroid-center) > 1e-6 {
		t.Fatalf("Centroid = %v, want %v", s.Centroid, center)
	}
	if math.Abs(s.Spread-sigma) > 1e-4 {
		t.Fatalf("Spread = %v, want %v", s.Spread, sigma)
	}
	// a Gaussian falls to 1/sqrt(2) at sigma*sqrt(ln 2) from its center
	wantBW := 2 * sigma * math.Sqrt(math.Ln2)
	if math.Abs(s.Bandwidth-wantBW) > 1e-4 {
		t.Fatalf("Bandwidth = %v, want %v", s.Bandwidth, wantBW)
	}
	if s.DC > 1e-20 {
		t.Fatalf("DC = %v, want ~0", s.DC)
	}
}

func TestMeasureIgnoresNegativeFrequencies(t *testing.T) {
	h := testutil.GaussianResponse(256, 0.1, 0.01)
	mirrored := append([]float64(nil), h...)
	for k := 129; k < 256; k++ {
		mirrored[k] = 5
	}
	a, b := Measure(h), Measure(mirrored)
	if a != b {
		t.Fatalf("stats differ:\n%+v\n%+v", a, b)
	}
}

func TestBandwidth(t *testing.T) {
	tests := []struct {
		name string
		h    []float64
		want float64
	}{
		{"flat", testutil.Ones(64), 0.5},
		{"zero", make([]float64, 64), 0},
		{"empty", nil, 0},
		// peak 1 at bin 2, threshold 0.7071 crossed halfway-ish on both sides
		{"triangle", []float64{0, 0.5, 1, 0.5, 0, 0, 0, 0}, 2 * (1 - (1/math.Sqrt2-0.5)/0.5) / 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bandwidth(tt.h); math.Abs(got-tt.want) > tolerance {
				t.Fatalf("Bandwidth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	if got := Centroid(testutil.Impulse(16, 4)); math.Abs(got-0.25) > tolerance {
		t.Fatalf("Centroid = %v, want 0.25", got)
	}
	if got := Centroid(make([]float64, 16)); got != 0 {
		t.Fatalf("Centroid(zero) = %v, want 0", got)
	}
	if got := Centroid([]float64{1}); got != 0 {
		t.Fatalf("Centroid(single) = %v, want 0", got)
	}
}

func TestSpreadSingleBin(t *testing.T) {
	s := Measure(testutil.Impulse(32, 5))
	if s.Spread != 0 {
		t.Fatalf("Spread = %v, want 0", s.Spread)
	}
}
