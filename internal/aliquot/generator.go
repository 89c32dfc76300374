// Package aliquot classifies aliquot sequences: the sequences obtained
// by repeatedly replacing a number with the sum of its proper
// divisors.
//
// A Generator builds the sequence for a starting number until it is
// provably periodic or terminated, classifies it into one of the kinds
// in package taxonomy, and memoizes the result in a Cache so that
// later sequences running into a known one are completed without
// further divisor sums.
package aliquot

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/unbound-force/aliquot/internal/number"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// Defaults used by DefaultOptions and by NewGenerator for unset fields.
const (
	DefaultMaxSteps  = 1_000_000
	DefaultCacheSize = 1_000_000
)

// Options configures a Generator.
type Options[T number.Number[T]] struct {
	// MaxValue abandons a sequence as Unknown once a member would be
	// greater than or equal to it. The zero value means T's maximum.
	MaxValue T

	// MaxSteps bounds the length of a computed sequence. Values < 1
	// select DefaultMaxSteps.
	MaxSteps int

	// CacheSize is the element budget of the generator's cache.
	// Zero disables memoization.
	CacheSize int

	// Logger receives trace events at debug level and overflow
	// diagnostics at warn level. Nil discards everything.
	Logger *log.Logger
}

// DefaultOptions returns the options used by New.
func DefaultOptions[T number.Number[T]]() Options[T] {
	return Options[T]{
		MaxValue:  number.Max[T](),
		MaxSteps:  DefaultMaxSteps,
		CacheSize: DefaultCacheSize,
	}
}

// Stats counts the work a Generator has done.
type Stats struct {
	// Hits and Misses count cache lookups, both for starting numbers
	// and for every computed sequence member.
	Hits   uint64
	Misses uint64

	// DivisorSums counts calls to DivisorSum.
	DivisorSums uint64

	// HitRatio is Hits as a percentage of all lookups (0-100).
	HitRatio float64
}

// Generator classifies aliquot sequences and owns the cache that
// memoizes them. A Generator is not safe for concurrent use; parallel
// callers each construct their own.
type Generator[T number.Number[T]] struct {
	maxValue T
	maxSteps int
	cache    *Cache[T]
	logger   *log.Logger

	hits, misses, sums uint64
}

// New returns a Generator with DefaultOptions.
func New[T number.Number[T]]() *Generator[T] {
	return NewGenerator(DefaultOptions[T]())
}

// NewGenerator returns a Generator configured by opts.
func NewGenerator[T number.Number[T]](opts Options[T]) *Generator[T] {
	var zero T
	if opts.MaxValue == zero {
		opts.MaxValue = zero.Max()
	}
	if opts.MaxSteps < 1 {
		opts.MaxSteps = DefaultMaxSteps
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Generator[T]{
		maxValue: opts.MaxValue,
		maxSteps: opts.MaxSteps,
		cache:    NewCache[T](opts.CacheSize),
		logger:   opts.Logger,
	}
}

// Cache returns the generator's cache.
func (g *Generator[T]) Cache() *Cache[T] { return g.cache }

// Stats returns a snapshot of the generator's counters.
func (g *Generator[T]) Stats() Stats {
	ratio := 0.0
	if total := g.hits + g.misses; total > 0 {
		ratio = float64(g.hits) / float64(total) * 100.0
	}
	return Stats{Hits: g.hits, Misses: g.misses, DivisorSums: g.sums, HitRatio: ratio}
}

// Classify returns the classification of the aliquot sequence
// starting at n. Apart from 0 and 1, which are Unknown and never
// cached, the result is stored in the generator's cache, and repeated
// calls with the same n are answered from it.
func (g *Generator[T]) Classify(n T) Seq[T] {
	one := n.One()
	if n == n.Zero() || n == one {
		return newSeq[T](taxonomy.Unknown, []T{n}, nil)
	}
	if s, ok := g.lookup(n); ok {
		g.logger.Debug("found sequence in cache", "n", n)
		return s
	}

	seq := []T{n}
	// Members seen during this call, for detecting a cycle that does
	// not pass through n.
	seen := make(map[T]struct{})

	for step := 1; step < g.maxSteps; step++ {
		last := seq[len(seq)-1]
		next, err := DivisorSum(last)
		g.sums++
		if err != nil {
			g.logger.Warn("sequence unknown", "n", n, "err", err)
			return g.finalize(newSeq[T](taxonomy.Unknown, seq, nil))
		}
		if next.Cmp(g.maxValue) >= 0 {
			g.logger.Debug("sequence exceeds maximum value", "n", n, "next", next, "max", g.maxValue)
			return g.finalize(newSeq[T](taxonomy.Unknown, seq, nil))
		}
		if cached, ok := g.lookup(next); ok {
			g.logger.Debug("completing sequence from cache", "n", n, "next", next, "kind", cached.kind)
			return g.splice(n, next, seq, cached)
		}

		switch {
		case next == one:
			g.logger.Debug("sequence converged to one", "n", n)
			if len(seq) == 1 {
				return g.finalize(newSeq[T](taxonomy.PrimeNumber, []T{n, one}, nil))
			}
			return g.finalize(newSeq[T](taxonomy.Convergent, append(seq, one), nil))

		case next == n:
			g.logger.Debug("sequence returned to start", "n", n, "length", len(seq))
			switch len(seq) {
			case 1:
				return g.finalize(newSeq[T](taxonomy.PerfectNumber, seq, nil))
			case 2:
				return g.finalize(newSeq[T](taxonomy.AmicableNumber, []T{n, last}, nil))
			default:
				return g.finalize(newSeq[T](taxonomy.SociableNumber, seq, nil))
			}

		case next == last:
			g.logger.Debug("sequence reached perfect number", "n", n, "perfect", last)
			return g.finalize(newSeq[T](taxonomy.AspiringNumber, seq, nil))
		}

		if _, ok := seen[next]; ok {
			g.logger.Debug("sequence entered cycle", "n", n, "at", next)
			pos := slices.Index(seq, next)
			return g.finalize(newSeq(taxonomy.IntoCycle, seq[:pos:pos], seq[pos:]))
		}
		seq = append(seq, next)
		seen[next] = struct{}{}
	}

	g.logger.Debug("step budget exhausted", "n", n, "steps", g.maxSteps)
	return g.finalize(newSeq[T](taxonomy.Unknown, seq, nil))
}

// splice completes seq, whose divisor sum next is already classified
// as cached.
func (g *Generator[T]) splice(n, next T, seq []T, cached Seq[T]) Seq[T] {
	switch cached.kind {
	case taxonomy.PerfectNumber:
		return g.finalize(newSeq[T](taxonomy.AspiringNumber, append(seq, cached.head[0]), nil))
	case taxonomy.PrimeNumber, taxonomy.Convergent:
		return g.finalize(newSeq[T](taxonomy.Convergent, append(seq, cached.head...), nil))
	case taxonomy.AmicableNumber:
		if cached.head[0] == next && cached.head[1] == n {
			// Mirror of a pair whose other half is already stored.
			return newSeq[T](taxonomy.AmicableNumber, []T{n, next}, nil)
		}
		return g.finalize(newSeq(taxonomy.IntoCycle, seq, cached.head))
	case taxonomy.SociableNumber:
		return g.finalize(newSeq(taxonomy.IntoCycle, seq, cached.head))
	case taxonomy.AspiringNumber:
		return g.finalize(newSeq[T](taxonomy.AspiringNumber, append(seq, cached.head...), nil))
	case taxonomy.IntoCycle:
		return g.finalize(newSeq(taxonomy.IntoCycle, append(seq, cached.head...), cached.cycle))
	default:
		return g.finalize(newSeq[T](taxonomy.Unknown, append(seq, cached.head...), nil))
	}
}

func (g *Generator[T]) lookup(n T) (Seq[T], bool) {
	s, ok := g.cache.Get(n)
	if ok {
		g.hits++
	} else {
		g.misses++
	}
	return s, ok
}

// finalize stores s in the cache and returns it.
func (g *Generator[T]) finalize(s Seq[T]) Seq[T] {
	g.cache.Add(s)
	return s
}
