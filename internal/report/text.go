package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Writer emits records as lines. Each record is written with a single
// call on the underlying writer while holding a lock, so lines from
// concurrent workers never interleave mid-line.
type Writer struct {
	mu     sync.Mutex
	out    io.Writer
	json   bool
	styles Styles
	buf    []byte
}

// NewWriter returns a Writer producing the given format ("text" or
// "json"). Text output is colored only when out is a terminal.
func NewWriter(out io.Writer, format string) (*Writer, error) {
	switch format {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid format %q: must be 'text' or 'json'", format)
	}
	return &Writer{
		out:    out,
		json:   format == "json",
		styles: StylesFor(lipgloss.NewRenderer(out)),
	}, nil
}

// NewStyledWriter returns a text Writer that always renders kind names
// with s, regardless of what out is.
func NewStyledWriter(out io.Writer, s Styles) *Writer {
	return &Writer{out: out, styles: s}
}

// Write emits one record.
func (w *Writer) Write(rec Record) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var err error
	if w.json {
		w.buf, err = appendJSON(w.buf[:0], rec)
		if err != nil {
			return fmt.Errorf("encoding record for %s: %w", rec.N, err)
		}
	} else {
		w.buf = appendText(w.buf[:0], rec, w.styles)
	}
	_, err = w.out.Write(w.buf)
	return err
}

// appendText renders rec in the line format matching how it was
// built: "<n> <sum>", "<n> <length>", or "<n>: <name> <sequence>".
func appendText(buf []byte, rec Record, s Styles) []byte {
	buf = append(buf, string(rec.N)...)
	switch {
	case rec.Sum != nil:
		buf = append(buf, ' ')
		buf = append(buf, string(*rec.Sum)...)
	case rec.display == "":
		buf = fmt.Appendf(buf, " %d", rec.Length)
	default:
		buf = append(buf, ": "...)
		buf = append(buf, s.KindStyle(rec.Kind).Render(rec.Name)...)
		buf = append(buf, ' ')
		buf = append(buf, rec.display...)
	}
	return append(buf, '\n')
}
