package filterplot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/cwbudde/algo-scatter/dsp/scattering/filterbank"
)

// maxChartPoints bounds the points per series in the HTML charts.
const maxChartPoints = 1024

const (
	lowpassHex  = "#dc1414"
	bandpassHex = "#1428dc"
)

// HTML renders the first- and second-order plots as interactive
// go-echarts line charts on one page.
func HTML(w io.Writer, b *filterbank.Bank) error {
	if b == nil {
		return ErrNilBank
	}
	page := components.NewPage()
	page.PageTitle = "Scattering filters"
	page.AddCharts(
		responseChart(b, b.Psi1, fmt.Sprintf("First-order filters (Q = %d)", b.Q), nil),
		responseChart(b, b.Psi2, "Second-order filters (Q = 1)", secondOrderYMax),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("filterplot: render html: %w", err)
	}
	return nil
}

func responseChart(b *filterbank.Bank, filters []filterbank.Filter, title string, yMax any) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "900px", Height: "560px"}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: 0, Max: nyquist, Name: "ω", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: yMax, Name: "ψ_j(ω)", NameLocation: "middle", NameGap: 35}),
	)

	freqs := b.Frequencies()
	line.AddSeries("phi", chartData(freqs, b.Phi.Levels[0]), seriesStyle(lowpassHex))
	for i := range filters {
		line.AddSeries(fmt.Sprintf("psi %d", i), chartData(freqs, filters[i].Levels[0]), seriesStyle(bandpassHex))
	}
	return line
}

func seriesStyle(hex string) charts.SeriesOpts {
	return func(s *charts.SingleSeries) {
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)})(s)
		charts.WithLineStyleOpts(opts.LineStyle{Color: hex, Width: 1})(s)
		charts.WithItemStyleOpts(opts.ItemStyle{Color: hex})(s)
	}
}

// chartData returns (f, h(f)) pairs over [0, 0.5], decimated to at most
// maxChartPoints.
func chartData(freqs, h []float64) []opts.LineData {
	last := len(h) / 2
	stride := max(1, (last+1)/maxChartPoints)
	data := make([]opts.LineData, 0, last/stride+2)
	for i := 0; i <= last; i += stride {
		data = append(data, opts.LineData{Value: []any{freqs[i], h[i]}})
	}
	if last%stride != 0 {
		data = append(data, opts.LineData{Value: []any{freqs[last], h[last]}})
	}
	return data
}
