package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"one bin", []float64{1, 2, 3}, []float64{1, 2.1, 3}, 0.1},
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0},
		{"sign", []float64{-1, 0}, []float64{1, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxAbsDiff(tt.a, tt.b); math.Abs(got-tt.want) > 1e-15 {
				t.Fatalf("MaxAbsDiff = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRequireHelpersAccept(t *testing.T) {
	data := []float64{-0.5, 0, 0.75}
	RequireFinite(t, data)
	RequireMagnitudeAtMost(t, data, 0.75)
	RequireSliceNearlyEqual(t, data, []float64{-0.5, 1e-12, 0.75}, 1e-9)
	RequireSliceNearlyEqual(t, nil, nil, 0)
}
