// SPDX-License-Identifier: MIT

// Package matrix - structural predicates & compatibility checks.
//
// Predicates are read-only and never fail: a nil argument, a nil receiver or
// a shape that does not apply (e.g. a triangular test on a non-square matrix)
// yields false.
//
// Empty matrix convention:
//   - IsEmpty and IsNull are true for 0×0 (IsNull holds vacuously).
//   - IsSquare is false for 0×0, therefore IsIdentity, IsDiagonal and every
//     triangular predicate are false as well.
//   - Can* checks apply the plain dimension rules, so two empty matrices can be
//     added and multiplied (both yield the empty matrix).

package matrix

// IsEqual reports whether m and other have the same shape and elements.
// The overflow policy is configuration, not value, and is not compared.
func (m *Matrix) IsEqual(other *Matrix) bool {
	if m == nil || other == nil {
		return false
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	for idx, v := range m.data {
		if other.data[idx] != v {
			return false
		}
	}

	return true
}

// IsRowVector reports Rows() == 1.
func (m *Matrix) IsRowVector() bool { return m != nil && m.r == 1 }

// IsColumnVector reports Cols() == 1.
func (m *Matrix) IsColumnVector() bool { return m != nil && m.c == 1 }

// IsSquare reports Rows() == Cols() > 0. The empty matrix is not square.
func (m *Matrix) IsSquare() bool { return m != nil && m.r > 0 && m.r == m.c }

// IsEmpty reports the canonical 0×0 state.
func (m *Matrix) IsEmpty() bool { return m != nil && m.r == 0 && m.c == 0 }

// IsNull reports whether every element is 0.
func (m *Matrix) IsNull() bool {
	if m == nil {
		return false
	}
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// IsIdentity reports a square matrix with ones on the diagonal and zeros elsewhere.
func (m *Matrix) IsIdentity() bool {
	if !m.IsDiagonal() {
		return false
	}
	for i := 0; i < m.r; i++ {
		if m.data[i*m.c+i] != 1 {
			return false
		}
	}

	return true
}

// IsDiagonal reports a square matrix whose off-diagonal elements are all 0.
func (m *Matrix) IsDiagonal() bool {
	return m.scanSquare(func(i, j int) bool { return i != j })
}

// IsUpperTriangular reports a square matrix with zeros strictly below the diagonal.
func (m *Matrix) IsUpperTriangular() bool {
	return m.scanSquare(func(i, j int) bool { return i > j })
}

// IsLowerTriangular reports a square matrix with zeros strictly above the diagonal.
func (m *Matrix) IsLowerTriangular() bool {
	return m.scanSquare(func(i, j int) bool { return i < j })
}

// IsTriangular reports upper OR lower triangular.
func (m *Matrix) IsTriangular() bool {
	return m.IsUpperTriangular() || m.IsLowerTriangular()
}

// IsBothTriangular reports upper AND lower triangular (equivalent to IsDiagonal).
func (m *Matrix) IsBothTriangular() bool {
	return m.IsUpperTriangular() && m.IsLowerTriangular()
}

// CanAdd reports whether m.Add(other) passes shape validation.
func (m *Matrix) CanAdd(other *Matrix) bool {
	return ValidateBinarySameShape(m, other) == nil
}

// CanSubtract reports whether m.Subtract(other) passes shape validation.
func (m *Matrix) CanSubtract(other *Matrix) bool {
	return ValidateBinarySameShape(m, other) == nil
}

// CanMultiply reports whether m.MultiplyByMatrix(other) passes shape validation.
func (m *Matrix) CanMultiply(other *Matrix) bool {
	return ValidateBinaryMul(m, other) == nil
}

// scanSquare reports whether m is square and every cell (i,j) selected by
// mustBeZero holds 0. Indices passed to mustBeZero are 0-based.
func (m *Matrix) scanSquare(mustBeZero func(i, j int) bool) bool {
	if !m.IsSquare() {
		return false
	}
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if mustBeZero(i, j) && m.data[base+j] != 0 {
				return false
			}
		}
	}

	return true
}
