package response_test

import (
	"fmt"

	"github.com/cwbudde/algo-scatter/stats/response"
)

func ExampleMeasure() {
	h := []float64{0, 1, 2, 1, 0, 0, 0, 0}
	s := response.Measure(h)
	fmt.Printf("peak=%.3f centroid=%.3f\n", s.PeakFreq, s.Centroid)

	// Output:
	// peak=0.250 centroid=0.250
}
