package aliquot

import (
	"errors"
	"strings"
	"testing"

	"github.com/unbound-force/aliquot/internal/number"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

func TestDivisorSum_ZeroAndOne(t *testing.T) {
	for _, n := range []number.U64{0, 1} {
		got, err := DivisorSum(n)
		if err != nil {
			t.Fatalf("DivisorSum(%d) error: %v", n, err)
		}
		if got != 0 {
			t.Errorf("DivisorSum(%d) = %d, want 0", n, got)
		}
	}
}

func TestDivisorSum_Primes(t *testing.T) {
	primes := []number.U64{
		2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
		59, 61, 67, 71, 73, 79, 83, 89, 97, 65521, 1000003,
		999999937, 2147483647,
	}
	for _, p := range primes {
		got, err := DivisorSum(p)
		if err != nil {
			t.Fatalf("DivisorSum(%d) error: %v", p, err)
		}
		if got != 1 {
			t.Errorf("DivisorSum(%d) = %d, want 1", p, got)
		}
	}
}

func TestDivisorSum_PerfectNumbers(t *testing.T) {
	for _, p := range []number.U64{6, 28, 496, 8128, 33550336} {
		got, err := DivisorSum(p)
		if err != nil {
			t.Fatalf("DivisorSum(%d) error: %v", p, err)
		}
		if got != p {
			t.Errorf("DivisorSum(%d) = %d, want %d", p, got, p)
		}
	}
}

func TestDivisorSum_Composites(t *testing.T) {
	tests := []struct {
		n, want number.U64
	}{
		// Square divisors count once.
		{4, 3},
		{9, 4},
		{12, 16},
		{16, 15},
		{220, 284},
		{284, 220},
		{1264460, 1547860},
	}
	for _, tt := range tests {
		got, err := DivisorSum(tt.n)
		if err != nil {
			t.Fatalf("DivisorSum(%d) error: %v", tt.n, err)
		}
		if got != tt.want {
			t.Errorf("DivisorSum(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestDivisorSum_AllWidthsAgree(t *testing.T) {
	for n := uint64(2); n < 2000; n++ {
		want, err := DivisorSum(number.U64(n))
		if err != nil {
			t.Fatal(err)
		}
		got32, err := DivisorSum(number.U32(n))
		if err != nil || uint64(got32) != uint64(want) {
			t.Fatalf("U32 DivisorSum(%d) = %d, %v; want %d", n, got32, err, want)
		}
		got128, err := DivisorSum(number.U128{}.FromUint64(n))
		if err != nil || got128.String() != want.String() {
			t.Fatalf("U128 DivisorSum(%d) = %s, %v; want %d", n, got128, err, want)
		}
	}
}

func TestDivisorSum_Overflow(t *testing.T) {
	// s(55440) = 176688, which does not fit in 16 bits.
	_, err := DivisorSum(number.U16(55440))
	if err == nil {
		t.Fatal("expected overflow error")
	}
	if !errors.Is(err, taxonomy.ErrOverflow) {
		t.Errorf("expected overflow kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "exceeds maximum 65535") {
		t.Errorf("error should name the maximum, got %q", err)
	}
}

func TestDivisorSum_NoAllocs(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_, _ = DivisorSum(number.U64(1264460))
	})
	if allocs != 0 {
		t.Errorf("DivisorSum allocated %.1f times per call", allocs)
	}
}
