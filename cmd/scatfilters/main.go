// Command scatfilters builds a 1D scattering filter bank and plots or
// tabulates its filters.
//
// Usage:
//
//	scatfilters [plot|info] [flags]
//
// Without a subcommand it renders the plots.
//
// Examples:
//
//	scatfilters
//	scatfilters plot -T 10 -J 4 -Q 4 -o out -f svg --lp
//	scatfilters info -c filters.yaml
package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/integrii/flaggy"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-scatter/dsp/scattering/filterbank"
	"github.com/cwbudde/algo-scatter/dsp/scattering/filterplot"
	"github.com/cwbudde/algo-scatter/internal/config"
	"github.com/cwbudde/algo-scatter/stats/response"
)

const (
	appName = "scatfilters"
	appDesc = "plot the filters of a 1D scattering transform"

	unset = -1
)

var version = "dev"

type cliArgs struct {
	configPath string
	logT       int
	j          int
	q          int
	outDir     string
	format     string
	lp         bool
	verbose    bool
}

type command int

const (
	cmdPlot command = iota
	cmdInfo
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cli, cmd, err := parseArgs(args)
	if err != nil {
		log.Errorf("failed to parse arguments: %v", err)
		return 2
	}
	if cli.verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := resolveConfig(cli)
	if err != nil {
		log.Errorf("invalid configuration: %v", err)
		return 1
	}
	entry := log.WithFields(logrus.Fields{"logT": cfg.LogT, "J": cfg.J, "Q": cfg.Q})

	opts, err := cfg.FilterOptions()
	if err != nil {
		entry.Errorf("invalid filter options: %v", err)
		return 1
	}
	bank, err := filterbank.New(cfg.LogT, cfg.J, cfg.Q, opts...)
	if err != nil {
		entry.Errorf("failed to build filter bank: %v", err)
		return 1
	}
	entry.WithFields(logrus.Fields{
		"psi1": len(bank.Psi1),
		"psi2": len(bank.Psi2),
		"phi":  len(bank.Phi.Levels),
	}).Debug("filter bank built")
	if bank.BorderEffects {
		entry.Warnf("lowpass filter does not decay within N/2 = %d samples; expect border effects", bank.N()/2)
	}

	switch cmd {
	case cmdInfo:
		if err := printBank(stdout, bank); err != nil {
			entry.Errorf("failed to write table: %v", err)
			return 1
		}
	default:
		width := vg.Length(cfg.Width) * vg.Inch
		height := vg.Length(cfg.Height) * vg.Inch
		paths, err := filterplot.WriteAll(bank, cfg.OutDir, cfg.Format, width, height, cfg.LPSum)
		if err != nil {
			entry.Errorf("failed to render plots: %v", err)
			return 1
		}
		for _, p := range paths {
			entry.WithField("path", p).Info("plot written")
		}
	}
	return 0
}

func parseArgs(args []string) (cliArgs, command, error) {
	cli := cliArgs{logT: unset, j: unset, q: unset}

	parser := flaggy.NewParser(appName)
	parser.Description = appDesc
	parser.Version = version

	plotCmd := flaggy.Subcommand{
		Name:        "plot",
		ShortName:   "p",
		Description: "render the first- and second-order filter plots (default)",
	}
	parser.AttachSubcommand(&plotCmd, 1)

	infoCmd := flaggy.Subcommand{
		Name:        "info",
		ShortName:   "i",
		Description: "print the center frequency, width and measured response of every filter",
	}
	parser.AttachSubcommand(&infoCmd, 1)

	parser.String(&cli.configPath, "c", "config", "YAML parameter file")
	parser.Int(&cli.logT, "T", "logT", "log2 of the signal support (default 13)")
	parser.Int(&cli.j, "J", "scale", "maximal scale exponent (default 5)")
	parser.Int(&cli.q, "Q", "per-octave", "first-order wavelets per octave (default 8)")
	parser.String(&cli.outDir, "o", "out", "output directory for plots")
	parser.String(&cli.format, "f", "format", "plot format: png, svg, pdf, eps, jpg, tif, html")
	parser.Bool(&cli.lp, "lp", "littlewood-paley", "also plot the Littlewood-Paley sums")
	parser.Bool(&cli.verbose, "v", "verbose", "log debug output")

	if err := parser.ParseArgs(args); err != nil {
		return cli, cmdPlot, err
	}
	if infoCmd.Used {
		return cli, cmdInfo, nil
	}
	return cli, cmdPlot, nil
}

// resolveConfig loads the parameter file, if any, and applies the flags
// given on the command line over it.
func resolveConfig(cli cliArgs) (config.Params, error) {
	cfg := config.Default()
	if cli.configPath != "" {
		var err error
		if cfg, err = config.Load(cli.configPath); err != nil {
			return cfg, err
		}
	}
	if cli.logT != unset {
		cfg.LogT = cli.logT
	}
	if cli.j != unset {
		cfg.J = cli.j
	}
	if cli.q != unset {
		cfg.Q = cli.q
	}
	if cli.outDir != "" {
		cfg.OutDir = cli.outDir
	}
	if cli.format != "" {
		cfg.Format = cli.format
	}
	if cli.lp {
		cfg.LPSum = true
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func printBank(w io.Writer, b *filterbank.Bank) error {
	if _, err := fmt.Fprintf(w, "N = %d  J = %d  Q = %d  TMaxPhi = %d  border effects = %t\n\n",
		b.N(), b.J, b.Q, b.TMaxPhi, b.BorderEffects); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Filter\tIndex\tXi\tSigma\tj\tLevels\tPeak [cyc/smp]\tBW 3dB [cyc/smp]\n"); err != nil {
		return fmt.Errorf("write row: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t-----\t--\t-----\t-\t------\t--------------\t----------------\n"); err != nil {
		return fmt.Errorf("write row: %w", err)
	}

	row := func(name string, i int, f *filterbank.Filter) error {
		s := response.Measure(f.Levels[0])
		_, err := fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%d\t%d\t%.6f\t%.6f\n",
			name, i, f.Xi, f.Sigma, f.J, len(f.Levels), s.PeakFreq, s.Bandwidth)
		if err != nil {
			return fmt.Errorf("write row: %w", err)
		}
		return nil
	}

	if err := row("phi", 0, &b.Phi); err != nil {
		return err
	}
	for i := range b.Psi1 {
		if err := row("psi1", i, &b.Psi1[i]); err != nil {
			return err
		}
	}
	for i := range b.Psi2 {
		if err := row("psi2", i, &b.Psi2[i]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
