// Package filterplot draws scattering filter banks with gonum/plot.
//
// Every plot shows full-resolution frequency responses over the normalized
// frequency range [0, 0.5]: the lowpass phi in red and the bandpass
// wavelets in blue. Plots are written to any format gonum/plot supports
// (png, svg, pdf, eps, jpg, tif), chosen by file extension, or as an
// interactive go-echarts page.
package filterplot
