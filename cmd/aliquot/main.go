package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/aliquot/internal/config"
	"github.com/unbound-force/aliquot/internal/report"
	"github.com/unbound-force/aliquot/internal/runner"
)

// Set by build flags.
var version = "dev"

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns the structured logger for one run (writes to w).
func newLogger(w io.Writer, verbose bool) *charmlog.Logger {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(charmlog.DebugLevel)
	}
	return logger
}

// overrides holds the flag values that were set explicitly on the
// command line. Nil fields leave the config value untouched.
type overrides struct {
	maxSteps  *int
	maxValue  *string
	cacheSize *int
	threads   *int
	bits      *int
	format    *string
}

// loadConfig reads the config file at path (or .aliquot.yaml in the
// working directory) and applies the explicit flag overrides. File
// errors name the config file; override errors do not.
func loadConfig(path string, ov overrides) (*config.AliquotConfig, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	merged := *cfg
	merged.Path = ""
	set := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	set(&merged.MaxSteps, ov.maxSteps)
	set(&merged.CacheSize, ov.cacheSize)
	set(&merged.Threads, ov.threads)
	set(&merged.Bits, ov.bits)
	if ov.maxValue != nil {
		merged.MaxValue = *ov.maxValue
	}
	if ov.format != nil {
		merged.Format = *ov.format
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	merged.Path = cfg.Path
	return &merged, nil
}

// aliquotParams holds the parsed flags for the root command.
type aliquotParams struct {
	args        []string
	cfg         *config.AliquotConfig
	lengths     bool
	sum         bool
	verbose     bool
	stats       bool
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// runAliquot is the extracted, testable body of the root command.
func runAliquot(p aliquotParams) error {
	logger := newLogger(p.stderr, p.verbose)
	if p.cfg.Path != "" {
		logger.Debug("loaded config", "path", p.cfg.Path)
	}

	mode := runner.Classify
	switch {
	case p.sum:
		mode = runner.Sums
	case p.lengths:
		mode = runner.Lengths
	}

	var (
		out    *report.Writer
		screen bytes.Buffer
		err    error
	)
	if p.interactive {
		out = report.NewStyledWriter(&screen, report.DefaultStyles())
	} else {
		out, err = report.NewWriter(p.stdout, p.cfg.Format)
		if err != nil {
			return err
		}
	}

	res, err := runner.Run(runner.Options{
		Bits:      p.cfg.Bits,
		MaxSteps:  p.cfg.MaxSteps,
		MaxValue:  p.cfg.MaxValue,
		CacheSize: p.cfg.CacheSize,
		Threads:   p.cfg.Threads,
		Mode:      mode,
		Args:      p.args,
		Out:       out,
		Logger:    logger,
	})
	if res == nil {
		return err
	}

	if p.stats && !p.interactive {
		if serr := report.WriteStats(p.stderr, res.Workers); serr != nil && err == nil {
			err = serr
		}
	}
	if err != nil {
		return err
	}
	if p.interactive {
		return runInteractive(screen.String(), res.Workers)
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var (
		maxSteps    int
		maxValue    string
		cacheSize   int
		threads     int
		bits        int
		format      string
		configPath  string
		lengths     bool
		sum         bool
		verbose     bool
		stats       bool
		interactive bool
	)

	root := &cobra.Command{
		Use:   "aliquot [flags] NUMBER|START-END[,...]...",
		Short: "Aliquot: classify aliquot sequences",
		Long: `Aliquot computes the aliquot sequence of each given number, repeatedly
replacing it with the sum of its proper divisors, and classifies it as a
perfect, prime, amicable, sociable or aspiring number, a sequence that
converges to 1 or into a cycle, or an unknown (unresolved) sequence.

Arguments are comma-separated numbers or inclusive ranges, e.g.
"aliquot 1-1000" or "aliquot 12,95,220-284".`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ov overrides
			flags := cmd.Flags()
			if flags.Changed("max-steps") {
				ov.maxSteps = &maxSteps
			}
			if flags.Changed("max-value") {
				ov.maxValue = &maxValue
			}
			if flags.Changed("cache-size") {
				ov.cacheSize = &cacheSize
			}
			if flags.Changed("threads") {
				ov.threads = &threads
			}
			if flags.Changed("bits") {
				ov.bits = &bits
			}
			if flags.Changed("format") {
				ov.format = &format
			}
			cfg, err := loadConfig(configPath, ov)
			if err != nil {
				return err
			}
			return runAliquot(aliquotParams{
				args:        args,
				cfg:         cfg,
				lengths:     lengths,
				sum:         sum,
				verbose:     verbose,
				stats:       stats,
				interactive: interactive,
				stdout:      cmd.OutOrStdout(),
				stderr:      cmd.ErrOrStderr(),
			})
		},
	}

	defaults := config.DefaultConfig()
	root.Flags().IntVarP(&maxSteps, "max-steps", "n", defaults.MaxSteps,
		"maximum number of numbers in a sequence")
	root.Flags().StringVarP(&maxValue, "max-value", "m", "",
		"maximum value for a number in a sequence (default: width maximum)")
	root.Flags().IntVarP(&cacheSize, "cache-size", "c", defaults.CacheSize,
		"cache size in numbers, shared by all threads (0 disables caching)")
	root.Flags().BoolVarP(&lengths, "lengths", "l", false,
		"just print the lengths of the sequences")
	root.Flags().IntVarP(&threads, "threads", "t", defaults.Threads,
		"number of worker threads")
	root.Flags().BoolVarP(&sum, "sum", "s", false,
		"just compute the aliquot sum instead of the aliquot sequence")
	root.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"print debug messages")
	root.Flags().IntVar(&bits, "bits", defaults.Bits,
		"integer width: 16, 32, 64, or 128")
	root.Flags().StringVar(&format, "format", defaults.Format,
		"output format: text or json")
	root.Flags().StringVar(&configPath, "config", "",
		"path to config file (default: "+config.FileName+" if present)")
	root.Flags().BoolVar(&stats, "stats", false,
		"print per-worker cache statistics to stderr")
	root.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing results")

	root.AddCommand(newSchemaCmd())
	return root
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for aliquot JSON output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents one line of
aliquot --format=json output. Useful for validating output or
generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
