package number

import (
	"errors"

	"lukechampine.com/uint128"
)

// U128 is a 128-bit aliquot sequence element backed by uint128.Uint128.
// The zero value is 0. U128 is comparable and can key a map.
type U128 struct {
	v uint128.Uint128
}

// NewU128 builds a U128 from its low and high 64-bit halves.
func NewU128(lo, hi uint64) U128 {
	return U128{uint128.New(lo, hi)}
}

func (a U128) Add(b U128) U128 { return U128{a.v.AddWrap(b.v)} }
func (a U128) Sub(b U128) U128 { return U128{a.v.SubWrap(b.v)} }
func (a U128) Mul(b U128) U128 { return U128{a.v.MulWrap(b.v)} }
func (a U128) Div(b U128) U128 { return U128{a.v.Div(b.v)} }
func (a U128) Cmp(b U128) int { return a.v.Cmp(b.v) }

func (U128) Zero() U128 { return U128{} }
func (U128) One() U128 { return U128{uint128.From64(1)} }
func (U128) Two() U128 { return U128{uint128.From64(2)} }
func (U128) Max() U128 { return U128{uint128.Max} }
func (U128) Bits() int { return 128 }
func (U128) FromUint64(v uint64) U128 { return U128{uint128.From64(v)} }
func (a U128) String() string { return a.v.String() }

// Parse accepts plain decimal digits only; uint128.FromString alone
// would also accept base prefixes and trailing garbage.
func (U128) Parse(s string) (U128, error) {
	if !isDecimal(s) {
		return U128{}, conversionError(s, 128, errors.New("invalid syntax"))
	}
	v, err := uint128.FromString(s)
	if err != nil {
		return U128{}, conversionError(s, 128, err)
	}
	return U128{v}, nil
}
