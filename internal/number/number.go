// Package number defines the unsigned arithmetic contract that aliquot
// sequence elements satisfy, together with one instantiation per
// supported bit width (16, 32, 64 and 128 bits).
//
// Sequence logic is written once against Number and instantiated per
// width, e.g. aliquot.NewGenerator[number.U64].
package number

import (
	"fmt"
	"strings"

	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// Number is the contract for a fixed-width unsigned value usable as an
// aliquot sequence element. Equality and hashing come from comparable,
// so every Number can key a Go map.
//
// Arithmetic wraps on overflow like Go's native unsigned integers;
// callers that must detect overflow compare against Max first.
type Number[T any] interface {
	comparable
	fmt.Stringer

	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T

	// Cmp returns -1, 0 or +1 depending on whether the receiver is
	// less than, equal to or greater than the argument.
	Cmp(T) int

	// Named constants. They are read from the zero value:
	//
	//	var z T
	//	limit := z.Max()
	Zero() T
	One() T
	Two() T
	Max() T

	// Bits is the width of the type.
	Bits() int

	// FromUint64 converts v, truncating to the type's width.
	FromUint64(v uint64) T

	// Parse decodes an unsigned decimal string. Failures are
	// *taxonomy.Error values of kind Conversion.
	Parse(s string) (T, error)
}

// Max returns the largest value of T.
func Max[T Number[T]]() T {
	var z T
	return z.Max()
}

// Parse decodes s as a T.
func Parse[T Number[T]](s string) (T, error) {
	var z T
	return z.Parse(s)
}

// ISqrt returns floor(sqrt(k)) computed by Newton's method without
// floating point.
func ISqrt[T Number[T]](k T) T {
	one, two := k.One(), k.Two()
	if k.Cmp(one) <= 0 {
		return k
	}
	x0 := k.Div(two)
	x1 := x0.Add(k.Div(x0)).Div(two)
	for x1.Cmp(x0) < 0 {
		x0 = x1
		x1 = x0.Add(k.Div(x0)).Div(two)
	}
	return x0
}

func conversionError(s string, bits int, cause error) error {
	return taxonomy.Errorf(taxonomy.Conversion, "cannot parse %q as a %d-bit unsigned integer: %v", s, bits, cause)
}

// isDecimal reports whether s is a non-empty run of ASCII digits.
func isDecimal(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}
