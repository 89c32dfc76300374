package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// Styles defines the visual theme for terminal output.
// Lipgloss degrades to no-color when the target is not a TTY.
type Styles struct {
	// Header is used for section headers and the stats title.
	Header lipgloss.Style

	// Perfect through Unknown color-code classification kinds.
	Perfect    lipgloss.Style
	Prime      lipgloss.Style
	Convergent lipgloss.Style
	Amicable   lipgloss.Style
	Sociable   lipgloss.Style
	Aspiring   lipgloss.Style
	IntoCycle  lipgloss.Style
	Unknown    lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// TableTotal styles the totals row.
	TableTotal lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme, rendered for stdout.
func DefaultStyles() Styles {
	return StylesFor(lipgloss.DefaultRenderer())
}

// StylesFor returns the default color scheme bound to r, so that color
// support is detected for r's output rather than stdout.
func StylesFor(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),

		Perfect:    r.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Prime:      r.NewStyle().Foreground(lipgloss.Color("75")),
		Convergent: r.NewStyle().Foreground(lipgloss.Color("245")),
		Amicable:   r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Sociable:   r.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		Aspiring:   r.NewStyle().Foreground(lipgloss.Color("63")),
		IntoCycle:  r.NewStyle().Foreground(lipgloss.Color("208")),
		Unknown:    r.NewStyle().Foreground(lipgloss.Color("196")),

		TableHeader: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   r.NewStyle().PaddingRight(1),
		TableTotal:  r.NewStyle().Bold(true).PaddingRight(1),

		Border: r.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// KindStyle returns the style for a classification kind.
func (s Styles) KindStyle(k taxonomy.Kind) lipgloss.Style {
	switch k {
	case taxonomy.PerfectNumber:
		return s.Perfect
	case taxonomy.PrimeNumber:
		return s.Prime
	case taxonomy.Convergent:
		return s.Convergent
	case taxonomy.AmicableNumber:
		return s.Amicable
	case taxonomy.SociableNumber:
		return s.Sociable
	case taxonomy.AspiringNumber:
		return s.Aspiring
	case taxonomy.IntoCycle:
		return s.IntoCycle
	default:
		return s.Unknown
	}
}
