package filterbank

import (
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// planCache keeps one inverse plan per transform size. Plans carry scratch
// state, so transforms on a shared plan are serialized.
type planCache struct {
	mu    sync.Mutex
	plans map[int]*algofft.Plan[complex128]
}

var inversePlans = &planCache{plans: make(map[int]*algofft.Plan[complex128])}

func (c *planCache) inverse(dst, src []complex128) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(src)
	plan, ok := c.plans[n]
	if !ok {
		var err error
		plan, err = algofft.NewPlan64(n)
		if err != nil {
			return fmt.Errorf("filterbank: failed to create FFT plan: %w", err)
		}
		c.plans[n] = plan
	}
	return plan.Inverse(dst, src)
}

// timeMagnitude returns |ifft(hf)|, the magnitude of the time-domain filter
// whose real frequency response is hf.
func timeMagnitude(hf []float64) ([]float64, error) {
	n := len(hf)
	freq := make([]complex128, n)
	for i, v := range hf {
		freq[i] = complex(v, 0)
	}

	timeDomain := make([]complex128, n)
	if err := inversePlans.inverse(timeDomain, freq); err != nil {
		return nil, err
	}

	re := make([]float64, n)
	im := make([]float64, n)
	for i, c := range timeDomain {
		re[i] = real(c)
		im[i] = imag(c)
	}
	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}
