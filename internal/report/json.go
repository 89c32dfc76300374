// Package report formats aliquot results as plain or styled text
// lines, JSON lines, and cache statistics tables.
package report

import (
	"encoding/json"

	"github.com/unbound-force/aliquot/internal/aliquot"
	"github.com/unbound-force/aliquot/internal/number"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// Record is the width-independent form of one output line. Numbers
// are kept as decimal literals so that 128-bit values survive JSON
// encoding.
type Record struct {
	N        json.Number   `json:"n"`
	Kind     taxonomy.Kind `json:"kind,omitempty"`
	Name     string        `json:"name,omitempty"`
	Length   int           `json:"length,omitempty"`
	Sequence []json.Number `json:"sequence,omitempty"`
	Cycle    []json.Number `json:"cycle,omitempty"`
	Sum      *json.Number  `json:"sum,omitempty"`

	// display is the bracketed sequence rendering used by text lines.
	display string
}

// FromSeq returns the full record for a classification. Sequence is
// the flattened sequence and Cycle its periodic part, if any.
func FromSeq[T number.Number[T]](s aliquot.Seq[T]) Record {
	return Record{
		N:        literal(s.Number()),
		Kind:     s.Kind(),
		Name:     s.Kind().DisplayName(),
		Length:   s.Len(),
		Sequence: literals(s.Seq()),
		Cycle:    literals(s.Cycle()),
		display:  s.String(),
	}
}

// LengthOf returns the record printed in lengths mode.
func LengthOf[T number.Number[T]](s aliquot.Seq[T]) Record {
	return Record{
		N:      literal(s.Number()),
		Kind:   s.Kind(),
		Length: s.Len(),
	}
}

// SumOf returns the record printed in sum mode.
func SumOf[T number.Number[T]](n, sum T) Record {
	v := literal(sum)
	return Record{N: literal(n), Sum: &v}
}

func literal[T number.Number[T]](v T) json.Number {
	return json.Number(v.String())
}

func literals[T number.Number[T]](vs []T) []json.Number {
	if len(vs) == 0 {
		return nil
	}
	out := make([]json.Number, len(vs))
	for i, v := range vs {
		out[i] = literal(v)
	}
	return out
}

// appendJSON appends rec as a single JSON line.
func appendJSON(buf []byte, rec Record) ([]byte, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return buf, err
	}
	buf = append(buf, data...)
	return append(buf, '\n'), nil
}
