// Package response measures the frequency responses of filters given as
// real-valued DFT bins.
//
// A response of length N is read over its non-negative half, bins 0..N/2,
// and bin i sits at the normalized frequency i/N in cycles/sample. Measured
// quantities are therefore directly comparable with the design parameters
// of a filter bank (center frequency xi, width sigma).
package response
