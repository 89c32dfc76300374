package aliquot

import (
	"slices"

	"github.com/unbound-force/aliquot/internal/number"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// Cache memoizes classifications. It stores canonical entries keyed by
// their starting number, plus a lookup table (LUT) mapping interior
// members of those entries back to the starting number, so that the
// suffix beginning at any interior member can be rebuilt without
// recomputing it.
//
// The total number of elements held is bounded by the size given to
// NewCache. A Cache is owned by a single Generator and is not safe for
// concurrent use.
type Cache[T number.Number[T]] struct {
	maxSize int
	count   int
	entries map[T]Seq[T]
	lut     map[T]T
}

// NewCache returns an empty cache holding at most maxSize numbers.
func NewCache[T number.Number[T]](maxSize int) *Cache[T] {
	return &Cache[T]{
		maxSize: max(maxSize, 0),
		entries: make(map[T]Seq[T]),
		lut:     make(map[T]T),
	}
}

// Add inserts s unless its starting number already has an entry or it
// does not fit in the remaining budget. It reports whether s was
// stored.
//
// Interior members other than 1 are registered in the LUT for
// Convergent, SociableNumber, AspiringNumber, IntoCycle (prefix only)
// and Unknown. AmicableNumber (n, m) also stores the mirrored pair
// (m, n) as a canonical entry of its own.
func (c *Cache[T]) Add(s Seq[T]) bool {
	n := s.Number()
	if _, ok := c.entries[n]; ok {
		return false
	}

	size := s.Len()
	var mirror T
	addMirror := false
	if s.kind == taxonomy.AmicableNumber {
		mirror = s.head[1]
		if _, ok := c.entries[mirror]; !ok {
			addMirror = true
			size += s.Len()
		}
	}
	if size > c.maxSize-c.count {
		return false
	}

	switch s.kind {
	case taxonomy.Convergent, taxonomy.SociableNumber, taxonomy.AspiringNumber,
		taxonomy.IntoCycle, taxonomy.Unknown:
		c.addLUT(n, s.head)
	}
	if addMirror {
		c.entries[mirror] = newSeq[T](taxonomy.AmicableNumber, []T{mirror, n}, nil)
	}
	c.entries[n] = s
	c.count += size
	return true
}

// addLUT points every member of seq after the first back to n. The
// value 1 ends every convergent sequence and is never registered.
func (c *Cache[T]) addLUT(n T, seq []T) {
	one := n.One()
	for _, v := range seq[1:] {
		if v.Cmp(one) <= 0 {
			continue
		}
		if _, ok := c.lut[v]; !ok {
			c.lut[v] = n
		}
	}
}

// Get returns the classification for n, either stored directly or
// rebuilt from the entry whose sequence contains n.
func (c *Cache[T]) Get(n T) (Seq[T], bool) {
	if s, ok := c.entries[n]; ok {
		return s, true
	}
	p, ok := c.lut[n]
	if !ok {
		return Seq[T]{}, false
	}
	s, ok := c.entries[p]
	if !ok {
		return Seq[T]{}, false
	}
	pos := slices.Index(s.head, n)
	if pos < 0 {
		return Seq[T]{}, false
	}

	switch s.kind {
	case taxonomy.Convergent, taxonomy.AspiringNumber, taxonomy.Unknown:
		// The last element is the terminal value, not a sequence head.
		if pos < len(s.head)-1 {
			return newSeq[T](s.kind, s.head[pos:], nil), true
		}
	case taxonomy.SociableNumber:
		rotated := make([]T, 0, len(s.head))
		rotated = append(rotated, s.head[pos:]...)
		rotated = append(rotated, s.head[:pos]...)
		return newSeq[T](s.kind, rotated, nil), true
	case taxonomy.IntoCycle:
		return newSeq(s.kind, s.head[pos:], s.cycle), true
	}
	return Seq[T]{}, false
}

// Clear drops every entry. The maps keep their allocated space.
func (c *Cache[T]) Clear() {
	c.count = 0
	clear(c.entries)
	clear(c.lut)
}

// NSeq returns the number of canonical entries.
func (c *Cache[T]) NSeq() int { return len(c.entries) }

// Count returns the total number of elements accounted for by the
// stored entries.
func (c *Cache[T]) Count() int { return c.count }

// MaxSize returns the element budget given to NewCache.
func (c *Cache[T]) MaxSize() int { return c.maxSize }
