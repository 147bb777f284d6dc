// SPDX-License-Identifier: MIT

// Package matrix - core linear algebra on *Matrix.
//
// Every operation here is pure with respect to its operands: it validates
// first, writes only into a freshly allocated result, and returns that result.
// Results inherit the receiver's OverflowPolicy. Under OverflowFail the first
// overflowing cell aborts the operation with ErrOverflow and no result.
//
// Complexity:
//   - Add/Subtract/MultiplyByScalar/Transpose: O(r*c).
//   - MultiplyByMatrix: O(r*n*c).

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSubtract  = "Subtract"
	opScalar    = "MultiplyByScalar"
	opMultiply  = "MultiplyByMatrix"
	opTranspose = "Transpose"
)

// Add returns m + other (element-wise). Shapes must match exactly.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	return m.zipWith(opAdd, other, m.policy().add)
}

// Subtract returns m − other (element-wise). Shapes must match exactly.
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	return m.zipWith(opSubtract, other, m.policy().sub)
}

// policy returns the receiver's overflow policy, tolerating a nil receiver so
// that method values can be taken before validation runs.
func (m *Matrix) policy() OverflowPolicy {
	if m == nil {
		return DefaultOverflowPolicy
	}

	return m.overflow
}

// zipWith is the shared element-wise kernel behind Add and Subtract.
func (m *Matrix) zipWith(tag string, other *Matrix, f func(a, b int64) (int64, bool)) (*Matrix, error) {
	// Stage 1: validate operands.
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	// Stage 2: single flat pass; both buffers share the row-major layout.
	res := m.derive(m.r, m.c)
	var ok bool
	for idx := range res.data {
		if res.data[idx], ok = f(m.data[idx], other.data[idx]); !ok {
			return nil, m.overflowAt(tag, idx)
		}
	}

	return res, nil
}

// MultiplyByScalar returns k·m.
func (m *Matrix) MultiplyByScalar(k int64) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScalar, err)
	}
	res := m.derive(m.r, m.c)
	var ok bool
	for idx, v := range m.data {
		if res.data[idx], ok = m.overflow.mul(v, k); !ok {
			return nil, m.overflowAt(opScalar, idx)
		}
	}

	return res, nil
}

// MultiplyByMatrix returns the matrix product m × other.
// Requires m.Cols() == other.Rows(); the result is m.Rows() × other.Cols().
func (m *Matrix) MultiplyByMatrix(other *Matrix) (*Matrix, error) {
	// Stage 1: validate inner dimensions.
	if err := ValidateBinaryMul(m, other); err != nil {
		return nil, matrixErrorf(opMultiply, err)
	}

	// Stage 2: allocate result.
	rows, inner, cols := m.r, m.c, other.c
	res := m.derive(rows, cols)
	p := m.overflow

	// Stage 3: i-k-j order streams rows of other; zero entries of m are skipped.
	// Cells whose running sum leaves the int64 range are marked and settled
	// exactly in Stage 4, since later terms may bring them back into range.
	var (
		i, j, k                   int
		rowOffA, rowOffB, rowOffR int
		av, prod, acc             int64
		ok                        bool
	)
	inexact := make([]bool, cols)
	for i = 0; i < rows; i++ {
		rowOffA = i * inner
		rowOffR = i * cols
		clear(inexact)
		for k = 0; k < inner; k++ {
			av = m.data[rowOffA+k]
			if av == 0 {
				continue
			}
			rowOffB = k * cols
			for j = 0; j < cols; j++ {
				if inexact[j] {
					continue
				}
				if prod, ok = OverflowFail.mul(av, other.data[rowOffB+j]); ok {
					acc, ok = OverflowFail.add(res.data[rowOffR+j], prod)
				}
				if !ok {
					inexact[j] = true
					continue
				}
				res.data[rowOffR+j] = acc
			}
		}

		// Stage 4: the policy applies to the exact cell value, never to a partial sum.
		for j = 0; j < cols; j++ {
			if !inexact[j] {
				continue
			}
			if acc, ok = p.dot(m.data[rowOffA:rowOffA+inner], other.data, j, cols); !ok {
				return nil, indexErrorf(opMultiply, i+1, j+1, ErrOverflow)
			}
			res.data[rowOffR+j] = acc
		}
	}

	return res, nil
}

// Transpose returns mᵀ (Cols() × Rows()).
func (m *Matrix) Transpose() (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.r, m.c
	res := m.derive(cols, rows)
	// data[i*cols + j] → res.data[j*rows + i]
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[base+j]
		}
	}

	return res, nil
}

// overflowAt reports ErrOverflow at the 1-based coordinates of flat offset idx.
func (m *Matrix) overflowAt(tag string, idx int) error {
	return indexErrorf(tag, idx/m.c+1, idx%m.c+1, ErrOverflow)
}
