// Package runner drives bulk classification: it decodes the requested
// ranges, splits them across a fixed pool of workers, each owning a
// private Generator, and streams one record per starting number.
package runner

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/unbound-force/aliquot/internal/aliquot"
	"github.com/unbound-force/aliquot/internal/number"
	"github.com/unbound-force/aliquot/internal/ranges"
	"github.com/unbound-force/aliquot/internal/report"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// Mode selects what is printed for each starting number.
type Mode int

const (
	// Classify prints the kind and the full sequence.
	Classify Mode = iota
	// Lengths prints only the sequence length.
	Lengths
	// Sums prints only the sum of proper divisors.
	Sums
)

// Options configures a run.
type Options struct {
	// Bits selects the integer width: 16, 32, 64 or 128.
	Bits int

	// MaxSteps and MaxValue bound each sequence; see aliquot.Options.
	// An empty MaxValue means the maximum of the width.
	MaxSteps int
	MaxValue string

	// CacheSize is the total cache budget, divided evenly among
	// workers.
	CacheSize int

	Threads int
	Mode    Mode

	// Args are the positional range arguments.
	Args []string

	// Out receives the records. Required.
	Out *report.Writer

	// Logger receives worker and classifier diagnostics. Nil
	// discards them.
	Logger *log.Logger
}

// Result reports what each worker did.
type Result struct {
	Workers []report.WorkerStats
}

// Run classifies every number named by opts.Args. Argument errors are
// returned before any output is produced. All workers run to
// completion; the first worker error is returned afterwards along
// with the statistics gathered so far.
func Run(opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	switch opts.Bits {
	case 16:
		return run[number.U16](opts)
	case 32:
		return run[number.U32](opts)
	case 64:
		return run[number.U64](opts)
	case 128:
		return run[number.U128](opts)
	default:
		return nil, taxonomy.Errorf(taxonomy.InvalidArg, "unsupported width %d bits: must be 16, 32, 64, or 128", opts.Bits)
	}
}

func run[T number.Number[T]](opts Options) (*Result, error) {
	rs, err := ranges.Parse[T](opts.Args)
	if err != nil {
		return nil, err
	}
	var maxValue T
	if opts.MaxValue != "" {
		maxValue, err = number.Parse[T](opts.MaxValue)
		if err != nil {
			return nil, fmt.Errorf("max value: %w", err)
		}
	}

	threads := max(opts.Threads, 1)
	work := ranges.Split(rs, threads)
	opts.Logger.Debug("starting workers", "threads", threads, "bits", opts.Bits, "ranges", len(rs))

	stats := make([]report.WorkerStats, threads)
	var g errgroup.Group
	for i, assigned := range work {
		assigned := assigned
		w := &worker[T]{
			id:     i,
			mode:   opts.Mode,
			out:    opts.Out,
			logger: opts.Logger.With("worker", i),
			stats:  &stats[i],
		}
		w.gen = aliquot.NewGenerator(aliquot.Options[T]{
			MaxValue:  maxValue,
			MaxSteps:  opts.MaxSteps,
			CacheSize: opts.CacheSize / threads,
			Logger:    w.logger,
		})
		g.Go(func() error { return w.run(assigned) })
	}
	err = g.Wait()
	return &Result{Workers: stats}, err
}

type worker[T number.Number[T]] struct {
	id     int
	mode   Mode
	gen    *aliquot.Generator[T]
	out    *report.Writer
	logger *log.Logger
	stats  *report.WorkerStats
}

func (w *worker[T]) run(assigned []ranges.Range[T]) error {
	w.logger.Debug("worker started", "ranges", len(assigned))
	defer w.finish()
	for _, r := range assigned {
		if err := r.Each(w.process); err != nil {
			return err
		}
	}
	return nil
}

func (w *worker[T]) process(n T) error {
	w.stats.Numbers++
	switch w.mode {
	case Sums:
		sum, err := aliquot.DivisorSum(n)
		w.stats.DivisorSums++
		if err != nil {
			return err
		}
		return w.out.Write(report.SumOf(n, sum))
	case Lengths:
		return w.out.Write(report.LengthOf(w.gen.Classify(n)))
	default:
		return w.out.Write(report.FromSeq(w.gen.Classify(n)))
	}
}

// finish records the generator's counters and logs the cache size.
func (w *worker[T]) finish() {
	st := w.gen.Stats()
	cache := w.gen.Cache()
	w.stats.Worker = w.id
	w.stats.Sequences = cache.NSeq()
	w.stats.Cached = cache.Count()
	w.stats.Hits = st.Hits
	w.stats.Misses = st.Misses
	w.stats.DivisorSums += st.DivisorSums
	w.logger.Debug("cache stored", "sequences", cache.NSeq(), "numbers", cache.Count(), "hit_ratio", fmt.Sprintf("%.1f%%", st.HitRatio))
}
