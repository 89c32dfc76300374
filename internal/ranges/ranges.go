// Package ranges decodes the positional number arguments of the
// aliquot command and distributes them across workers.
package ranges

import (
	"strings"

	"github.com/unbound-force/aliquot/internal/number"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// Range is an inclusive span of starting numbers.
type Range[T number.Number[T]] struct {
	Start T
	End   T
}

// Single returns the range holding only n.
func Single[T number.Number[T]](n T) Range[T] {
	return Range[T]{Start: n, End: n}
}

// String renders the range as "START-END", or "N" for a single number.
func (r Range[T]) String() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return r.Start.String() + "-" + r.End.String()
}

// Each calls fn for every number in r in ascending order. It stops
// early, returning the error, if fn fails.
func (r Range[T]) Each(fn func(T) error) error {
	one := r.Start.One()
	for n := r.Start; ; n = n.Add(one) {
		if err := fn(n); err != nil {
			return err
		}
		if n == r.End {
			return nil
		}
	}
}

// Parse decodes command-line arguments into ranges. Each argument is a
// comma-separated list of tokens, and each token is either a number N
// or an inclusive range START-END. Ranges are returned in argument
// order.
func Parse[T number.Number[T]](args []string) ([]Range[T], error) {
	var out []Range[T]
	for _, arg := range args {
		for _, tok := range strings.Split(arg, ",") {
			r, err := parseToken[T](tok)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
	}
	return out, nil
}

func parseToken[T number.Number[T]](tok string) (Range[T], error) {
	startStr, endStr, isRange := strings.Cut(tok, "-")
	start, err := number.Parse[T](startStr)
	if err != nil {
		return Range[T]{}, err
	}
	if !isRange {
		return Single(start), nil
	}
	end, err := number.Parse[T](endStr)
	if err != nil {
		return Range[T]{}, err
	}
	if end.Cmp(start) < 0 {
		return Range[T]{}, taxonomy.Errorf(taxonomy.InvalidRange, "%s - %s", start, end)
	}
	return Range[T]{Start: start, End: end}, nil
}

// Split assigns ranges to workers. A single range shared by more than
// one worker is cut into equal consecutive chunks, the last chunk
// taking the remainder; workers whose chunk would be empty get none.
// Otherwise range i goes to worker i % workers. The result always has
// exactly workers entries.
func Split[T number.Number[T]](rs []Range[T], workers int) [][]Range[T] {
	workers = max(workers, 1)
	out := make([][]Range[T], workers)
	if len(rs) == 1 && workers > 1 {
		splitOne(rs[0], out)
		return out
	}
	for i, r := range rs {
		out[i%workers] = append(out[i%workers], r)
	}
	return out
}

func splitOne[T number.Number[T]](r Range[T], out [][]Range[T]) {
	one := r.Start.One()
	var z T
	w := z.FromUint64(uint64(len(out)))

	// A span covering the whole domain has no representable length;
	// its chunks are then sized from the span alone.
	span := r.End.Sub(r.Start)
	per := span.Div(w)
	if span != span.Max() {
		per = span.Add(one).Div(w)
	}

	last := len(out) - 1
	if per == z {
		out[last] = []Range[T]{r}
		return
	}
	start := r.Start
	for i := 0; i < last; i++ {
		end := start.Add(per).Sub(one)
		out[i] = []Range[T]{{Start: start, End: end}}
		start = end.Add(one)
	}
	out[last] = []Range[T]{{Start: start, End: r.End}}
}
