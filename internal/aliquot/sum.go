package aliquot

import (
	"github.com/unbound-force/aliquot/internal/number"
	"github.com/unbound-force/aliquot/internal/taxonomy"
)

// DivisorSum returns the aliquot sum s(n): the sum of all divisors of
// n smaller than n. s(0) and s(1) are 0.
//
// Divisors are found by trial division up to floor(sqrt(n)); each hit
// i contributes i and n/i, or i alone when i*i == n. If the sum would
// exceed T's maximum, DivisorSum returns a *taxonomy.Error of kind
// Overflow.
func DivisorSum[T number.Number[T]](n T) (T, error) {
	one := n.One()
	if n.Cmp(one) <= 0 {
		return n.Zero(), nil
	}
	limit := n.Max()
	sum := one
	end := number.ISqrt(n).Add(one)
	for i := n.Two(); i.Cmp(end) < 0; i = i.Add(one) {
		div := n.Div(i)
		if i.Mul(div) != n {
			continue
		}
		add := i
		if i != div {
			add = i.Add(div)
		}
		if add.Cmp(limit.Sub(sum)) > 0 {
			return n.Zero(), taxonomy.Errorf(taxonomy.Overflow,
				"%s plus %s exceeds maximum %s", sum, add, limit)
		}
		sum = sum.Add(add)
	}
	return sum, nil
}
