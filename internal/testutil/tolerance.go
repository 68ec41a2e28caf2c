package testutil

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// MaxAbsDiff returns the largest |a[i]-b[i]|. It panics on a length
// mismatch; the Require helpers check lengths first.
func MaxAbsDiff(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair differs by more than eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if len(got) == 0 || MaxAbsDiff(got, want) <= eps {
		return
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); d > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
		}
	}
}

// RequireFinite fails t on the first NaN or Inf in response.
func RequireFinite(t *testing.T, response []float64) {
	t.Helper()
	for i, v := range response {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("bin %d: non-finite value %v", i, v)
		}
	}
}

// RequireMagnitudeAtMost fails t if any |response[i]| exceeds limit.
func RequireMagnitudeAtMost(t *testing.T, response []float64, limit float64) {
	t.Helper()
	if len(response) == 0 {
		return
	}
	if peak := floats.Norm(response, math.Inf(1)); peak <= limit {
		return
	}
	for i, v := range response {
		if math.Abs(v) > limit {
			t.Fatalf("bin %d: |%v| > %v", i, v, limit)
		}
	}
}
