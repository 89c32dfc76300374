package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

// WorkerStats summarizes one worker's generator after a run.
type WorkerStats struct {
	Worker      int
	Numbers     uint64 // starting numbers processed
	Sequences   int    // canonical cache entries
	Cached      int    // numbers held by the cache
	Hits        uint64
	Misses      uint64
	DivisorSums uint64
}

// HitRatio returns Hits as a percentage of all lookups.
func (ws WorkerStats) HitRatio() float64 {
	total := ws.Hits + ws.Misses
	if total == 0 {
		return 0
	}
	return float64(ws.Hits) / float64(total) * 100
}

// WriteStats writes a per-worker cache statistics table followed by a
// totals row. Color support is detected for w.
func WriteStats(w io.Writer, stats []WorkerStats) error {
	s := StylesFor(lipgloss.NewRenderer(w))
	if len(stats) == 0 {
		_, err := fmt.Fprintln(w, s.Muted.Render("No workers ran."))
		return err
	}

	var total WorkerStats
	rows := make([][]string, 0, len(stats)+1)
	for _, ws := range stats {
		rows = append(rows, statsRow(strconv.Itoa(ws.Worker), ws))
		total.Numbers += ws.Numbers
		total.Sequences += ws.Sequences
		total.Cached += ws.Cached
		total.Hits += ws.Hits
		total.Misses += ws.Misses
		total.DivisorSums += ws.DivisorSums
	}
	rows = append(rows, statsRow("total", total))
	last := len(rows) - 1

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.TableHeader
			case row == last:
				return s.TableTotal
			default:
				return s.TableCell
			}
		}).
		Headers("WORKER", "NUMBERS", "SEQUENCES", "CACHED", "HITS", "MISSES", "DIVISOR SUMS", "HIT RATIO").
		Rows(rows...)

	if _, err := fmt.Fprintln(w, s.Header.Render("--- Cache Statistics ---")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, t)
	return err
}

func statsRow(label string, ws WorkerStats) []string {
	return []string{
		label,
		humanize.Comma(int64(ws.Numbers)),
		humanize.Comma(int64(ws.Sequences)),
		humanize.Comma(int64(ws.Cached)),
		humanize.Comma(int64(ws.Hits)),
		humanize.Comma(int64(ws.Misses)),
		humanize.Comma(int64(ws.DivisorSums)),
		fmt.Sprintf("%.1f%%", ws.HitRatio()),
	}
}
