// SPDX-License-Identifier: MIT

// Package matrix - read-only accessors with 1-based indexing.
//
// Every accessor translates (row, col) from the mathematical 1-based contract
// to the 0-based flat buffer in exactly one place (indexOf). Returned slices
// are always copies; callers may keep or mutate them freely.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix)(nil)

// ---------- error context tags ----------

const (
	ctxElement = "Element"
	ctxRow     = "Row"
	ctxColumn  = "Column"
	ctxReplace = "ReplaceElement"
)

// ---------- Formatting literals ----------

const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtRowOpen  = "("
	_fmtRowClose = ")"
	_fmtSep      = ","
)

// Rows returns the row count (0 for a nil m). Complexity: O(1).
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 for a nil m). Complexity: O(1).
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// MinDimension returns min(Rows(), Cols()), the length of the main diagonal.
func (m *Matrix) MinDimension() int { return min(m.Rows(), m.Cols()) }

// indexOf bounds-checks a 1-based (row, col) and returns the flat offset.
// The sentinel is returned unwrapped; public callers add context.
func (m *Matrix) indexOf(row, col int) (int, error) {
	if row < 1 || row > m.r {
		return 0, ErrOutOfRange
	}
	if col < 1 || col > m.c {
		return 0, ErrOutOfRange
	}

	return (row-1)*m.c + (col - 1), nil
}

// Element returns the value at 1-based (row, col) or ErrOutOfRange.
func (m *Matrix) Element(row, col int) (int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(ctxElement, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, indexErrorf(ctxElement, row, col, err)
	}

	return m.data[off], nil
}

// Row returns a copy of the elements of 1-based row n.
func (m *Matrix) Row(n int) ([]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}
	if n < 1 || n > m.r {
		return nil, indexErrorf(ctxRow, n, 0, ErrOutOfRange)
	}
	out := make([]int64, m.c)
	copy(out, m.data[(n-1)*m.c:n*m.c])

	return out, nil
}

// Column returns a copy of the elements of 1-based column n (top to bottom).
func (m *Matrix) Column(n int) ([]int64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(ctxColumn, err)
	}
	if n < 1 || n > m.c {
		return nil, indexErrorf(ctxColumn, 0, n, ErrOutOfRange)
	}
	out := make([]int64, m.r)
	for i, off := 0, n-1; i < m.r; i, off = i+1, off+m.c {
		out[i] = m.data[off]
	}

	return out, nil
}

// MainDiagonal returns the elements (i,i) for i in 1..MinDimension().
// The empty matrix yields an empty (non-nil) slice.
func (m *Matrix) MainDiagonal() []int64 {
	n := m.MinDimension()
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[i*m.c+i]
	}

	return out
}

// ToArray returns a row-major copy of the matrix as a slice of rows.
// Modifying the result does not affect m. A nil m yields an empty slice.
func (m *Matrix) ToArray() [][]int64 {
	rows := m.Rows()
	out := make([][]int64, rows)
	for i := 0; i < rows; i++ {
		row := make([]int64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String renders the matrix as "[(1,2),(3,4)]" for diagnostics.
// The empty matrix renders as "[]" and a nil m as "<nil>".
// Not a stable serialization format.
func (m *Matrix) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i := 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.FormatInt(m.data[base+j], 10))
		}
		b.WriteString(_fmtRowClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}
