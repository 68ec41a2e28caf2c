package response

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Stats holds measurements of one filter's magnitude response.
type Stats struct {
	Size     int     // full response length N
	DC       float64 // |h[0]|
	Peak     float64 // largest magnitude over [0, 0.5]
	PeakBin  int
	PeakFreq float64 // cycles/sample
	PeakDB   float64
	Energy   float64 // sum of squared magnitudes over [0, 0.5]

	Centroid  float64 // magnitude-weighted mean frequency
	Spread    float64 // magnitude-weighted standard deviation around Centroid
	Bandwidth float64 // width between the -3 dB points around the peak
}

// toDB converts a linear magnitude to decibels.
// Returns -Inf for zero values.
func toDB(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(v)
}

// binFreq returns the normalized frequency of bin i of a length-n response.
func binFreq(i, n int) float64 {
	return float64(i) / float64(n)
}

// halfMagnitude returns |h[0..N/2]|.
func halfMagnitude(h []float64) []float64 {
	mag := make([]float64, len(h)/2+1)
	for i := range mag {
		mag[i] = math.Abs(h[i])
	}
	return mag
}

// Measure computes all statistics of the response h.
func Measure(h []float64) Stats {
	n := len(h)
	if n == 0 {
		return Stats{PeakDB: math.Inf(-1)}
	}
	if n == 1 {
		v := math.Abs(h[0])
		return Stats{
			Size:   1,
			DC:     v,
			Peak:   v,
			PeakDB: toDB(v),
			Energy: v * v,
		}
	}

	mag := halfMagnitude(h)

	var s Stats
	s.Size = n
	s.DC = mag[0]
	s.PeakBin = floats.MaxIdx(mag)
	s.Peak = mag[s.PeakBin]
	s.PeakFreq = binFreq(s.PeakBin, n)
	s.PeakDB = toDB(s.Peak)
	s.Energy = floats.Dot(mag, mag)

	sum := floats.Sum(mag)
	s.Centroid = centroid(mag, n, sum)
	s.Spread = spread(mag, n, s.Centroid, sum)
	s.Bandwidth = bandwidth(mag, n)
	return s
}

// Centroid returns the magnitude-weighted mean frequency of h over [0, 0.5].
//
//	centroid = sum(f_i * |h_i|) / sum(|h_i|)
func Centroid(h []float64) float64 {
	if len(h) < 2 {
		return 0
	}
	mag := halfMagnitude(h)
	return centroid(mag, len(h), floats.Sum(mag))
}

func centroid(mag []float64, n int, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weightedSum := 0.0
	for i, v := range mag {
		weightedSum += binFreq(i, n) * v
	}
	return weightedSum / sumMag
}

func spread(mag []float64, n int, cent, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weightedSqSum := 0.0
	for i, v := range mag {
		diff := binFreq(i, n) - cent
		weightedSqSum += diff * diff * v
	}
	return math.Sqrt(weightedSqSum / sumMag)
}

// Bandwidth returns the -3 dB bandwidth around the peak of h over [0, 0.5],
// in cycles/sample.
//
// The -3 dB points, where the magnitude falls to peak/sqrt(2), are located on
// both sides of the peak with linear interpolation between bins. A side that
// never falls that low extends to 0 or 0.5.
func Bandwidth(h []float64) float64 {
	if len(h) < 2 {
		return 0
	}
	return bandwidth(halfMagnitude(h), len(h))
}

func bandwidth(mag []float64, n int) float64 {
	peakBin := floats.MaxIdx(mag)
	peakVal := mag[peakBin]
	if peakVal == 0 {
		return 0
	}

	threshold := peakVal / math.Sqrt2

	lowerFreq := binFreq(0, n)
	for i := peakBin; i >= 1; i-- {
		if mag[i-1] <= threshold && mag[i] > threshold {
			lowerFreq = interpFreq(i-1, i, mag[i-1], mag[i], threshold, n)
			break
		}
	}

	last := len(mag) - 1
	upperFreq := binFreq(last, n)
	for i := peakBin; i < last; i++ {
		if mag[i+1] <= threshold && mag[i] > threshold {
			upperFreq = interpFreq(i, i+1, mag[i], mag[i+1], threshold, n)
			break
		}
	}

	bw := upperFreq - lowerFreq
	if bw < 0 {
		return 0
	}
	return bw
}

// interpFreq linearly interpolates between two bins to find the frequency
// where the magnitude crosses the given threshold.
func interpFreq(binLow, binHigh int, magLow, magHigh, threshold float64, n int) float64 {
	fLow := binFreq(binLow, n)
	fHigh := binFreq(binHigh, n)

	denom := magHigh - magLow
	if denom == 0 {
		return (fLow + fHigh) / 2
	}
	t := (threshold - magLow) / denom
	return fLow + t*(fHigh-fLow)
}
