package filterplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-scatter/dsp/scattering/filterbank"
)

// Default canvas size.
const (
	DefaultWidth  = 8 * vg.Inch
	DefaultHeight = 5 * vg.Inch
)

const (
	nyquist         = 0.5
	secondOrderYMax = 1.2
	labelSize       = 18
)

// Errors.
var (
	ErrNilBank      = errors.New("filterplot: nil filter bank")
	ErrInvalidOrder = errors.New("filterplot: scattering order must be 1 or 2")
)

var (
	lowpassColor  = color.RGBA{R: 220, G: 20, B: 20, A: 255}
	bandpassColor = color.RGBA{R: 20, G: 40, B: 220, A: 255}
	lpSumColor    = color.RGBA{R: 20, G: 140, B: 60, A: 255}
)

// FirstOrder plots phi and every first-order wavelet.
func FirstOrder(b *filterbank.Bank) (*plot.Plot, error) {
	if b == nil {
		return nil, ErrNilBank
	}
	p := newResponsePlot(fmt.Sprintf("First-order filters (Q = %d)", b.Q))
	if _, err := addResponses(p, b, b.Psi1); err != nil {
		return nil, err
	}
	p.X.Min, p.X.Max = 0, nyquist
	return p, nil
}

// SecondOrder plots phi and every second-order wavelet. Second-order
// wavelets have one wavelet per octave and hence a wider bandwidth.
func SecondOrder(b *filterbank.Bank) (*plot.Plot, error) {
	if b == nil {
		return nil, ErrNilBank
	}
	p := newResponsePlot("Second-order filters (Q = 1)")
	if _, err := addResponses(p, b, b.Psi2); err != nil {
		return nil, err
	}
	p.X.Min, p.X.Max = 0, nyquist
	p.Y.Min, p.Y.Max = 0, secondOrderYMax
	return p, nil
}

// LittlewoodPaley plots the sum of squared full-resolution responses of the
// wavelets of one scattering order, with phi squared for reference.
func LittlewoodPaley(b *filterbank.Bank, order int) (*plot.Plot, error) {
	if b == nil {
		return nil, ErrNilBank
	}
	var filters []filterbank.Filter
	switch order {
	case 1:
		filters = b.Psi1
	case 2:
		filters = b.Psi2
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Littlewood-Paley sum, order %d", order)
	p.X.Label.Text = "ω"
	p.Y.Label.Text = "Σ|ψ_j(ω)|²"
	p.Add(plotter.NewGrid())

	freqs := b.Frequencies()
	phiSq := make([]float64, len(b.Phi.Levels[0]))
	for i, v := range b.Phi.Levels[0] {
		phiSq[i] = v * v
	}
	phiLine, err := responseLine(freqs, phiSq, lowpassColor)
	if err != nil {
		return nil, err
	}
	sum := filterbank.LittlewoodPaley(filters, 0)
	if sum == nil {
		sum = make([]float64, len(freqs))
	}
	sumLine, err := responseLine(freqs, sum, lpSumColor)
	if err != nil {
		return nil, err
	}
	p.Add(phiLine, sumLine)
	p.Legend.Add("|φ|²", phiLine)
	p.Legend.Add(fmt.Sprintf("order %d", order), sumLine)
	p.Legend.Top = true

	p.X.Min, p.X.Max = 0, nyquist
	return p, nil
}

func newResponsePlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(labelSize)
	p.X.Label.Text = "ω"
	p.X.Label.TextStyle.Font.Size = vg.Points(labelSize)
	p.Y.Label.Text = "ψ_j(ω)"
	p.Y.Label.TextStyle.Font.Size = vg.Points(labelSize)
	return p
}

// addResponses adds phi followed by every filter to p and returns the lines
// in that order.
func addResponses(p *plot.Plot, b *filterbank.Bank, filters []filterbank.Filter) ([]*plotter.Line, error) {
	freqs := b.Frequencies()
	lines := make([]*plotter.Line, 0, len(filters)+1)

	phi, err := responseLine(freqs, b.Phi.Levels[0], lowpassColor)
	if err != nil {
		return nil, fmt.Errorf("lowpass: %w", err)
	}
	lines = append(lines, phi)

	for i := range filters {
		line, err := responseLine(freqs, filters[i].Levels[0], bandpassColor)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		lines = append(lines, line)
	}
	for _, l := range lines {
		p.Add(l)
	}
	return lines, nil
}

// responseLine draws h over the bins at or below Nyquist.
func responseLine(freqs, h []float64, c color.Color) (*plotter.Line, error) {
	half := len(h)/2 + 1
	pts := make(plotter.XYs, half)
	for k := range pts {
		pts[k].X = freqs[k]
		pts[k].Y = h[k]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(1)
	return line, nil
}

// Save writes p to path; the format follows the file extension.
func Save(p *plot.Plot, path string, width, height vg.Length) error {
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("filterplot: save %s: %w", path, err)
	}
	return nil
}

// Encode writes p to w in the given format (png, svg, pdf, ...).
func Encode(w io.Writer, p *plot.Plot, format string, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("filterplot: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// WriteAll renders the first- and second-order plots, and the
// Littlewood-Paley sums when withLP is set, into dir as
// <name>.<format>. It returns the written paths. The html format writes
// both orders to a single interactive page, filters.html; width, height
// and withLP do not apply to it.
func WriteAll(b *filterbank.Bank, dir, format string, width, height vg.Length, withLP bool) ([]string, error) {
	if b == nil {
		return nil, ErrNilBank
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("filterplot: create output dir: %w", err)
	}

	ext := strings.TrimPrefix(strings.ToLower(format), ".")
	if ext == "html" {
		path := filepath.Join(dir, "filters.html")
		if err := writeHTML(b, path); err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	type job struct {
		name  string
		build func() (*plot.Plot, error)
	}
	jobs := []job{
		{"first_order", func() (*plot.Plot, error) { return FirstOrder(b) }},
		{"second_order", func() (*plot.Plot, error) { return SecondOrder(b) }},
	}
	if withLP {
		jobs = append(jobs,
			job{"lp_sum_order1", func() (*plot.Plot, error) { return LittlewoodPaley(b, 1) }},
			job{"lp_sum_order2", func() (*plot.Plot, error) { return LittlewoodPaley(b, 2) }},
		)
	}

	paths := make([]string, 0, len(jobs))
	for _, j := range jobs {
		p, err := j.build()
		if err != nil {
			return paths, fmt.Errorf("%s: %w", j.name, err)
		}
		path := filepath.Join(dir, j.name+"."+ext)
		if err := Save(p, path, width, height); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeHTML(b *filterbank.Bank, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("filterplot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("filterplot: close %s: %w", path, cerr)
		}
	}()
	return HTML(f, b)
}
