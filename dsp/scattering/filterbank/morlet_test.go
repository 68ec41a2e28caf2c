package filterbank

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-scatter/internal/testutil"
)

func TestPeriodize(t *testing.T) {
	h := []float64{1, 2, 3, 4, 5, 6}

	got, err := Periodize(h, 2)
	if err != nil {
		t.Fatalf("Periodize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{2.5, 3.5, 4.5}, 1e-15)

	got, err = Periodize(h, 3)
	if err != nil {
		t.Fatalf("Periodize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{3, 4}, 1e-15)

	got, err = Periodize(h, 1)
	if err != nil {
		t.Fatalf("Periodize: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, h, 0)
}

func TestPeriodizeErrors(t *testing.T) {
	for _, periods := range []int{0, -1, 4, 7} {
		if _, err := Periodize(make([]float64, 6), periods); !errors.Is(err, ErrInvalidPeriods) {
			t.Errorf("Periodize(6 bins, %d): err = %v, want ErrInvalidPeriods", periods, err)
		}
	}
}

func TestFFTFreqs(t *testing.T) {
	testutil.RequireSliceNearlyEqual(t, fftFreqs(8),
		[]float64{0, 0.125, 0.25, 0.375, -0.5, -0.375, -0.25, -0.125}, 1e-15)
	testutil.RequireSliceNearlyEqual(t, fftFreqs(5),
		[]float64{0, 0.2, 0.4, -0.4, -0.2}, 1e-15)
}

func TestPeriodGrid(t *testing.T) {
	got := periodGrid(4, 2)
	want := []float64{-1, -0.75, -0.5, -0.25, 0, 0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75}
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-15)
}

func TestMorlet(t *testing.T) {
	const n = 1024
	tests := []struct {
		name      string
		xi, sigma float64
	}{
		{"high", 0.35, SigmaPsi(0.35, 1, math.Sqrt(0.5))},
		{"mid", 0.1, 0.01},
		{"narrow", 0.02, 0.003},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Morlet(n, tt.xi, tt.sigma)
			if err != nil {
				t.Fatalf("Morlet: %v", err)
			}
			if len(h) != n {
				t.Fatalf("len = %d, want %d", len(h), n)
			}
			testutil.RequireFinite(t, h)
			if math.Abs(h[0]) > 1e-12 {
				t.Fatalf("DC response = %v, want 0", h[0])
			}
			// unit L1 norm in time bounds every frequency bin
			testutil.RequireMagnitudeAtMost(t, h, 1+1e-9)

			peak := 0
			for k := 1; k < n/2; k++ {
				if h[k] > h[peak] {
					peak = k
				}
			}
			if d := math.Abs(float64(peak)/n - tt.xi); d > tt.sigma {
				t.Fatalf("peak at %v, want within %v of %v", float64(peak)/n, tt.sigma, tt.xi)
			}
		})
	}
}

func TestGaussUnitDCGain(t *testing.T) {
	for _, sigma := range []float64{0.1, 0.01, 0.003125} {
		g, err := Gauss(512, sigma)
		if err != nil {
			t.Fatalf("Gauss(%v): %v", sigma, err)
		}
		if math.Abs(g[0]-1) > 1e-9 {
			t.Errorf("Gauss(%v)[0] = %v, want 1", sigma, g[0])
		}
		testutil.RequireMagnitudeAtMost(t, g, 1+1e-9)
		for k := 1; k < 256; k++ {
			if g[k] > g[k-1]+1e-12 {
				t.Fatalf("Gauss(%v) not decreasing at bin %d", sigma, k)
			}
		}
	}
}

func TestGaussSinglePeriod(t *testing.T) {
	// P_max = 1 samples over [-0.5, 0.5) only; still symmetric with unit DC.
	g, err := Gauss(64, 0.05, WithPMax(1))
	if err != nil {
		t.Fatalf("Gauss: %v", err)
	}
	if math.Abs(g[0]-1) > 1e-9 {
		t.Fatalf("g[0] = %v, want 1", g[0])
	}
	for k := 1; k < 32; k++ {
		if math.Abs(g[k]-g[64-k]) > 1e-12 {
			t.Fatalf("g[%d] = %v, g[%d] = %v, want symmetric", k, g[k], 64-k, g[64-k])
		}
	}
}

func TestNormalizationL2(t *testing.T) {
	const n = 256
	h, err := Morlet(n, 0.2, 0.02, WithNormalization(NormL2))
	if err != nil {
		t.Fatalf("Morlet: %v", err)
	}
	// Parseval: sum |h_t|^2 = sum |h_f|^2 / N
	energy := 0.0
	for _, v := range h {
		energy += v * v
	}
	energy /= n
	if math.Abs(energy-1) > 1e-9 {
		t.Fatalf("time-domain energy = %v, want 1", energy)
	}
}

func TestNormalizingFactorDegenerate(t *testing.T) {
	_, err := NormalizingFactor(make([]float64, 32), NormL1)
	if !errors.Is(err, ErrDegenerateFilter) {
		t.Fatalf("err = %v, want ErrDegenerateFilter", err)
	}
}

func TestNormalizingFactorImpulse(t *testing.T) {
	// a flat response is a unit impulse in time
	f, err := NormalizingFactor(testutil.Ones(64), NormL1)
	if err != nil {
		t.Fatalf("NormalizingFactor: %v", err)
	}
	if math.Abs(f-1) > 1e-12 {
		t.Fatalf("factor = %v, want 1", f)
	}
}

func TestMorletErrors(t *testing.T) {
	if _, err := Morlet(0, 0.1, 0.01); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("n=0: err = %v, want ErrInvalidLength", err)
	}
	if _, err := Morlet(64, 0.1, 0.01, WithPMax(0)); !errors.Is(err, ErrInvalidPMax) {
		t.Errorf("P_max=0: err = %v, want ErrInvalidPMax", err)
	}
	if _, err := Gauss(64, 0.1, WithNormalization(Normalization(7))); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("bad normalization: err = %v, want ErrInvalidOption", err)
	}
}

func TestParseNormalization(t *testing.T) {
	for in, want := range map[string]Normalization{"l1": NormL1, "": NormL1, "L2": NormL2} {
		got, err := ParseNormalization(in)
		if err != nil || got != want {
			t.Errorf("ParseNormalization(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseNormalization("max"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("ParseNormalization(max): err = %v, want ErrInvalidOption", err)
	}
	if NormL2.String() != "l2" {
		t.Errorf("NormL2.String() = %q", NormL2.String())
	}
}
