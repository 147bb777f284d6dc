// SPDX-License-Identifier: MIT

// Package matrix - int64 primitives that honor the OverflowPolicy.
//
// Each primitive returns (value, ok). ok==false only under OverflowFail; the
// wrap and saturate policies always produce a value. Detection uses sign-bit
// tests on the wrapped result, so no wider type is needed for a single step.
// A dot product is different: partial sums may leave the int64 range and come
// back, so dot evaluates the whole cell exactly before applying the policy.

package matrix

import (
	"math"
	"math/big"
)

// add returns a+b under policy p.
func (p OverflowPolicy) add(a, b int64) (int64, bool) {
	s := a + b
	if (a^s)&(b^s) >= 0 { // both operands share the result's sign: no overflow
		return s, true
	}

	return p.resolve(s, a > 0)
}

// sub returns a-b under policy p.
func (p OverflowPolicy) sub(a, b int64) (int64, bool) {
	d := a - b
	if (a^b)&(a^d) >= 0 { // overflow needs differing operand signs and a flipped result
		return d, true
	}

	return p.resolve(d, b < 0)
}

// mul returns a*b under policy p.
func (p OverflowPolicy) mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	prod := a * b
	// MinInt64 * -1 is the one case the division check below cannot see.
	overflow := (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || prod/b != a
	if !overflow {
		return prod, true
	}

	return p.resolve(prod, (a < 0) == (b < 0))
}

// resolve maps an overflowed result to the policy outcome.
// positive reports the sign of the mathematically exact result.
func (p OverflowPolicy) resolve(wrapped int64, positive bool) (int64, bool) {
	switch p {
	case OverflowWrap:
		return wrapped, true
	case OverflowSaturate:
		if positive {
			return math.MaxInt64, true
		}
		return math.MinInt64, true
	default:
		return 0, false
	}
}

// dot returns the inner product of row with column j of the row-major buffer
// col (stride = its column count). The sum is evaluated exactly and p is
// applied once, to the final value.
func (p OverflowPolicy) dot(row, col []int64, j, stride int) (int64, bool) {
	var (
		exact, x, y big.Int
		wrapped     int64
		b           int64
	)
	for k, a := range row {
		b = col[k*stride+j]
		wrapped += a * b // low 64 bits of the exact sum
		x.SetInt64(a)
		y.SetInt64(b)
		exact.Add(&exact, x.Mul(&x, &y))
	}
	if exact.IsInt64() {
		return exact.Int64(), true
	}

	return p.resolve(wrapped, exact.Sign() > 0)
}
