package number

import (
	"math"
	"strconv"
)

// U16 is a 16-bit aliquot sequence element.
type U16 uint16

func (a U16) Add(b U16) U16 { return a + b }
func (a U16) Sub(b U16) U16 { return a - b }
func (a U16) Mul(b U16) U16 { return a * b }
func (a U16) Div(b U16) U16 { return a / b }

func (a U16) Cmp(b U16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (U16) Zero() U16 { return 0 }
func (U16) One() U16 { return 1 }
func (U16) Two() U16 { return 2 }
func (U16) Max() U16 { return math.MaxUint16 }
func (U16) Bits() int { return 16 }
func (U16) FromUint64(v uint64) U16 { return U16(v) }
func (a U16) String() string { return strconv.FormatUint(uint64(a), 10) }

func (U16) Parse(s string) (U16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, conversionError(s, 16, err)
	}
	return U16(v), nil
}

// U32 is a 32-bit aliquot sequence element.
type U32 uint32

func (a U32) Add(b U32) U32 { return a + b }
func (a U32) Sub(b U32) U32 { return a - b }
func (a U32) Mul(b U32) U32 { return a * b }
func (a U32) Div(b U32) U32 { return a / b }

func (a U32) Cmp(b U32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (U32) Zero() U32 { return 0 }
func (U32) One() U32 { return 1 }
func (U32) Two() U32 { return 2 }
func (U32) Max() U32 { return math.MaxUint32 }
func (U32) Bits() int { return 32 }
func (U32) FromUint64(v uint64) U32 { return U32(v) }
func (a U32) String() string { return strconv.FormatUint(uint64(a), 10) }

func (U32) Parse(s string) (U32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, conversionError(s, 32, err)
	}
	return U32(v), nil
}

// U64 is a 64-bit aliquot sequence element. It is the default width of
// the command line tool.
type U64 uint64

func (a U64) Add(b U64) U64 { return a + b }
func (a U64) Sub(b U64) U64 { return a - b }
func (a U64) Mul(b U64) U64 { return a * b }
func (a U64) Div(b U64) U64 { return a / b }

func (a U64) Cmp(b U64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (U64) Zero() U64 { return 0 }
func (U64) One() U64 { return 1 }
func (U64) Two() U64 { return 2 }
func (U64) Max() U64 { return math.MaxUint64 }
func (U64) Bits() int { return 64 }
func (U64) FromUint64(v uint64) U64 { return U64(v) }
func (a U64) String() string { return strconv.FormatUint(uint64(a), 10) }

func (U64) Parse(s string) (U64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, conversionError(s, 64, err)
	}
	return U64(v), nil
}
