// Package taxonomy defines the classification kinds of aliquot
// sequences and the error kinds shared by the aliquot packages.
package taxonomy

// Kind enumerates the long-term behaviors an aliquot sequence can
// settle into.
type Kind string

// Terminating kinds.
const (
	// PerfectNumber: s(n) = n.
	PerfectNumber Kind = "PerfectNumber"

	// PrimeNumber: s(n) = 1 in a single step.
	PrimeNumber Kind = "PrimeNumber"

	// Convergent: the sequence reaches 1.
	Convergent Kind = "Convergent"

	// AspiringNumber: the sequence reaches a perfect number other
	// than n itself.
	AspiringNumber Kind = "AspiringNumber"
)

// Cycling kinds.
const (
	// AmicableNumber: n -> m -> n.
	AmicableNumber Kind = "AmicableNumber"

	// SociableNumber: n -> ... -> n with at least three members.
	SociableNumber Kind = "SociableNumber"

	// IntoCycle: the sequence enters a cycle that does not contain n.
	IntoCycle Kind = "IntoCycle"
)

// Unknown covers undefined starts (0 and 1), arithmetic overflow,
// values past the configured ceiling and an exhausted step budget.
const Unknown Kind = "Unknown"

// AllKinds returns every kind in display order.
func AllKinds() []Kind {
	return []Kind{
		PerfectNumber, PrimeNumber, Convergent, AmicableNumber,
		SociableNumber, AspiringNumber, IntoCycle, Unknown,
	}
}

// Cycles reports whether sequences of this kind end in a cycle.
func (k Kind) Cycles() bool {
	switch k {
	case AmicableNumber, SociableNumber, IntoCycle:
		return true
	}
	return false
}

// Valid reports whether k is one of the eight known kinds.
func (k Kind) Valid() bool {
	_, ok := displayNames[k]
	return ok
}
