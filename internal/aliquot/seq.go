package aliquot

import (
	"slices"
	"strings"

	"github.com/unbound-force/aliquot/internal/number"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// Seq is the classification of one starting number: its kind plus the
// numbers needed to rebuild the full sequence. A Seq is immutable;
// every view that exposes numbers returns a fresh slice.
//
// The zero Seq is not a valid classification.
type Seq[T number.Number[T]] struct {
	kind taxonomy.Kind

	// head holds the whole sequence, except for IntoCycle where it
	// holds only the prefix leading into the cycle.
	head []T

	// cycle is set for IntoCycle only.
	cycle []T
}

// newSeq wraps slices without copying. Callers hand over ownership.
func newSeq[T number.Number[T]](kind taxonomy.Kind, head, cycle []T) Seq[T] {
	return Seq[T]{kind: kind, head: head, cycle: cycle}
}

// Perfect classifies n as a perfect number.
func Perfect[T number.Number[T]](n T) Seq[T] {
	return newSeq[T](taxonomy.PerfectNumber, []T{n}, nil)
}

// Prime classifies n as a prime: n -> 1.
func Prime[T number.Number[T]](n T) Seq[T] {
	return newSeq[T](taxonomy.PrimeNumber, []T{n, n.One()}, nil)
}

// Convergent classifies a sequence ending in 1. v must not be empty.
func Convergent[T number.Number[T]](v []T) Seq[T] {
	return newSeq[T](taxonomy.Convergent, slices.Clone(v), nil)
}

// Amicable classifies the pair n -> m -> n.
func Amicable[T number.Number[T]](n, m T) Seq[T] {
	return newSeq[T](taxonomy.AmicableNumber, []T{n, m}, nil)
}

// Sociable classifies a cycle of three or more members starting at
// v[0].
func Sociable[T number.Number[T]](v []T) Seq[T] {
	return newSeq[T](taxonomy.SociableNumber, slices.Clone(v), nil)
}

// Aspiring classifies a sequence ending at a perfect number.
func Aspiring[T number.Number[T]](v []T) Seq[T] {
	return newSeq[T](taxonomy.AspiringNumber, slices.Clone(v), nil)
}

// IntoCycle classifies a sequence whose prefix runs into a cycle that
// does not contain prefix[0].
func IntoCycle[T number.Number[T]](prefix, cycle []T) Seq[T] {
	return newSeq(taxonomy.IntoCycle, slices.Clone(prefix), slices.Clone(cycle))
}

// Unknown classifies a sequence that could not be resolved.
func Unknown[T number.Number[T]](v []T) Seq[T] {
	return newSeq[T](taxonomy.Unknown, slices.Clone(v), nil)
}

// Kind returns the classification kind.
func (s Seq[T]) Kind() taxonomy.Kind { return s.kind }

// Number returns the starting number, which is always Seq()[0].
func (s Seq[T]) Number() T { return s.head[0] }

// Len returns the number of elements in the flattened sequence.
func (s Seq[T]) Len() int { return len(s.head) + len(s.cycle) }

// Cycles reports whether the sequence ends in a cycle.
func (s Seq[T]) Cycles() bool { return s.kind.Cycles() }

// Seq returns the flattened sequence, prefix before cycle.
func (s Seq[T]) Seq() []T {
	out := make([]T, 0, s.Len())
	out = append(out, s.head...)
	return append(out, s.cycle...)
}

// Prefix returns the part of the sequence before the cycle for
// IntoCycle, and the whole sequence for every other kind.
func (s Seq[T]) Prefix() []T { return slices.Clone(s.head) }

// Cycle returns the repeating part: the cycle of IntoCycle, the whole
// sequence of AmicableNumber and SociableNumber, nil otherwise.
func (s Seq[T]) Cycle() []T {
	switch s.kind {
	case taxonomy.IntoCycle:
		return slices.Clone(s.cycle)
	case taxonomy.AmicableNumber, taxonomy.SociableNumber:
		return slices.Clone(s.head)
	}
	return nil
}

// Equal reports whether s and o have the same kind and numbers.
func (s Seq[T]) Equal(o Seq[T]) bool {
	return s.kind == o.kind &&
		slices.Equal(s.head, o.head) &&
		slices.Equal(s.cycle, o.cycle)
}

// String renders the sequence as "[a, b, c]", or "[a, b] -> [c, d]"
// for IntoCycle.
func (s Seq[T]) String() string {
	var sb strings.Builder
	writeList(&sb, s.head)
	if s.kind == taxonomy.IntoCycle {
		sb.WriteString(" -> ")
		writeList(&sb, s.cycle)
	}
	return sb.String()
}

func writeList[T number.Number[T]](sb *strings.Builder, v []T) {
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(x.String())
	}
	sb.WriteByte(']')
}
