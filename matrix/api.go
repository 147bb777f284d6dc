// SPDX-License-Identifier: MIT

// Package matrix - public API facades.
//
// Purpose:
//   - Provide function-style entry points (Sum(a, b)) next to the method set (a.Add(b)).
//   - Avoid any logic duplication: each facade delegates to the canonical method.
//
// Policy:
//   - Facades never change the loop orders or overflow policy of underlying kernels.
//   - A nil operand yields ErrNilMatrix (validated by the kernels).

package matrix

// Sum is an alias for a.Add(b): element-wise a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return a.Add(b) }

// Diff is an alias for a.Subtract(b): element-wise a − b.
func Diff(a, b *Matrix) (*Matrix, error) { return a.Subtract(b) }

// Product is an alias for a.MultiplyByMatrix(b): matrix product a × b.
func Product(a, b *Matrix) (*Matrix, error) { return a.MultiplyByMatrix(b) }

// Scale is an alias for m.MultiplyByScalar(k).
func Scale(m *Matrix, k int64) (*Matrix, error) { return m.MultiplyByScalar(k) }

// T is an alias for m.Transpose(). Good for small helpers and chaining.
func T(m *Matrix) (*Matrix, error) { return m.Transpose() }

// Equal reports a.IsEqual(b); two nil matrices are not equal.
func Equal(a, b *Matrix) bool { return a.IsEqual(b) }

// ZerosLike returns a new zero matrix with the shape and policy of m.
func ZerosLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return m.derive(m.r, m.c), nil
}

// IdentityLike returns I_n with n = Rows(m); requires a square m.
func IdentityLike(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}
	if !m.IsSquare() {
		return nil, matrixErrorf("IdentityLike", ErrDimensionMismatch)
	}

	return NewIdentity(m.r, WithOverflowPolicy(m.overflow))
}
