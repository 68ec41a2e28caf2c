// Package filterbank builds the frequency-domain filter banks of a 1D
// wavelet scattering transform.
//
// A bank holds one Gaussian lowpass filter phi and two sets of Morlet
// bandpass filters: psi1 with Q wavelets per octave for the first order, and
// psi2 with one wavelet per octave for the second order. Every filter is
// stored as real frequency responses indexed by resolution level: level k is
// the response at support N/2^k, obtained by periodizing level 0.
//
// Center frequencies and bandwidths are calibrated so that neighbouring
// dyadic wavelets intersect at r_psi of their peak:
//
//	xi_max    = max(1/(1 + 2^(3/Q)), 0.35)
//	sigma_psi = xi * (1 - 2^(-1/Q)) / (1 + 2^(-1/Q)) / sqrt(2 ln(1/r_psi))
//	sigma_low = sigma0 / 2^J
//
// Dyadic wavelets are emitted while their width stays above sigma_low; the
// low-frequency band below the last one is covered by Q-1 linearly spaced
// wavelets of width sigma_low.
//
// Basic usage:
//
//	b, err := filterbank.New(13, 5, 8) // N = 2^13, J = 5, Q = 8
//	if err != nil {
//	    return err
//	}
//	for _, psi := range b.Psi1 {
//	    fmt.Printf("xi=%.4f sigma=%.5f j=%d\n", psi.Xi, psi.Sigma, psi.J)
//	}
package filterbank
