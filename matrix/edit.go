// SPDX-License-Identifier: MIT

// Package matrix - structural editing (mutating, in place).
//
// Purpose:
//   - Grow or shrink the matrix one row/column at a time with buffer splices.
//   - Keep rectangularity and the canonical 0×0 state after every call.
//
// Behavior highlights:
//   - All validation happens before the first write: a failing call leaves the
//     receiver untouched (no partial mutation).
//   - Positions are 1-based. Insertion at count+1 is an append.
//   - On the empty matrix the first row (column) defines Cols() (Rows()).
//   - Removing the last row or column returns to the canonical Empty Matrix.
//
// Complexity:
//   - Row splices: O(r*c) worst case (memmove of the tail).
//   - Column splices: O(r*c) (every row shifts).

package matrix

import "slices"

// ---------- error context tags ----------

const (
	ctxSetMatrix    = "SetMatrix"
	ctxAppendRow    = "AppendRow"
	ctxAppendColumn = "AppendColumn"
	ctxInsertRow    = "InsertRow"
	ctxInsertColumn = "InsertColumn"
	ctxRemoveRow    = "RemoveRow"
	ctxRemoveColumn = "RemoveColumn"
)

// SetMatrix replaces the shape and contents of m with a deep copy of other.
// The receiver keeps its own overflow policy. Self-assignment is a no-op.
func (m *Matrix) SetMatrix(other *Matrix) error {
	if m == nil || other == nil {
		return matrixErrorf(ctxSetMatrix, ErrNilMatrix)
	}
	if other == m {
		return nil
	}
	// Reuse the receiver's buffer when it is large enough.
	if cap(m.data) >= len(other.data) {
		m.data = m.data[:len(other.data)]
	} else {
		m.data = make([]int64, len(other.data))
	}
	copy(m.data, other.data)
	m.r, m.c = other.r, other.c

	return nil
}

// AppendRow adds values as a new last row.
// len(values) must equal Cols(), unless m is empty, in which case the matrix
// becomes 1×len(values).
func (m *Matrix) AppendRow(values []int64) error {
	return m.insertRow(ctxAppendRow, values, m.Rows()+1)
}

// AppendColumn adds values as a new last column.
// len(values) must equal Rows(), unless m is empty, in which case the matrix
// becomes len(values)×1.
func (m *Matrix) AppendColumn(values []int64) error {
	return m.insertColumn(ctxAppendColumn, values, m.Cols()+1)
}

// InsertRow inserts values before row at (1-based), shifting rows at..Rows() down.
// at must lie in [1, Rows()+1]; at==Rows()+1 appends.
func (m *Matrix) InsertRow(values []int64, at int) error {
	return m.insertRow(ctxInsertRow, values, at)
}

// InsertColumn inserts values before column at (1-based), shifting columns right.
// at must lie in [1, Cols()+1]; at==Cols()+1 appends.
func (m *Matrix) InsertColumn(values []int64, at int) error {
	return m.insertColumn(ctxInsertColumn, values, at)
}

// insertRow is the shared row splice behind AppendRow/InsertRow.
func (m *Matrix) insertRow(tag string, values []int64, at int) error {
	// Stage 1: validate receiver, position, then length (nothing is written before this passes).
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(tag, err)
	}
	if at < 1 || at > m.r+1 {
		return indexErrorf(tag, at, 0, ErrOutOfRange)
	}
	if err := m.validateLineLen(len(values), m.c); err != nil {
		return indexErrorf(tag, at, len(values), err)
	}

	// Stage 2: the first row of an empty matrix fixes the column count.
	if m.r == 0 {
		m.c = len(values)
	}

	// Stage 3: a row is a contiguous run in row-major order; splice it in.
	m.data = slices.Insert(m.data, (at-1)*m.c, values...)
	m.r++

	return nil
}

// insertColumn is the shared column splice behind AppendColumn/InsertColumn.
func (m *Matrix) insertColumn(tag string, values []int64, at int) error {
	// Stage 1: validate receiver, position, then length.
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(tag, err)
	}
	if at < 1 || at > m.c+1 {
		return indexErrorf(tag, 0, at, ErrOutOfRange)
	}
	if err := m.validateLineLen(len(values), m.r); err != nil {
		return indexErrorf(tag, len(values), at, err)
	}

	// Stage 2: the first column of an empty matrix fixes the row count.
	if m.r == 0 {
		m.data = append(m.data[:0], values...)
		m.r, m.c = len(values), 1

		return nil
	}

	// Stage 3: rebuild rows with the new value placed at offset at-1 of each row.
	newCols := m.c + 1
	buf := make([]int64, m.r*newCols)
	var i, src, dst int
	for i = 0; i < m.r; i++ {
		src, dst = i*m.c, i*newCols
		copy(buf[dst:dst+at-1], m.data[src:src+at-1])           // left part
		buf[dst+at-1] = values[i]                               // inserted cell
		copy(buf[dst+at:dst+newCols], m.data[src+at-1:src+m.c]) // right part
	}
	m.data = buf
	m.c = newCols

	return nil
}

// RemoveRow deletes 1-based row n and closes the gap.
// Removing the only row yields the canonical Empty Matrix.
func (m *Matrix) RemoveRow(n int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxRemoveRow, err)
	}
	if n < 1 || n > m.r {
		return indexErrorf(ctxRemoveRow, n, 0, ErrOutOfRange)
	}
	m.data = slices.Delete(m.data, (n-1)*m.c, n*m.c)
	m.r--
	m.normalizeEmpty()

	return nil
}

// RemoveColumn deletes 1-based column n and closes the gap.
// Removing the only column yields the canonical Empty Matrix.
func (m *Matrix) RemoveColumn(n int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxRemoveColumn, err)
	}
	if n < 1 || n > m.c {
		return indexErrorf(ctxRemoveColumn, 0, n, ErrOutOfRange)
	}
	// Compact in place: reads never fall behind writes.
	skip := n - 1
	w := 0
	for idx, v := range m.data {
		if idx%m.c == skip {
			continue
		}
		m.data[w] = v
		w++
	}
	m.data = m.data[:w]
	m.c--
	m.normalizeEmpty()

	return nil
}

// ReplaceElement overwrites the value at 1-based (row, col).
func (m *Matrix) ReplaceElement(row, col int, value int64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(ctxReplace, err)
	}
	off, err := m.indexOf(row, col)
	if err != nil {
		return indexErrorf(ctxReplace, row, col, err)
	}
	m.data[off] = value

	return nil
}

// validateLineLen checks a new row/column length against the opposing dimension.
// An empty matrix accepts any positive length.
func (m *Matrix) validateLineLen(got, want int) error {
	if got == 0 {
		return ErrDimensionMismatch // would create an N×0 shape
	}
	if m.r > 0 && got != want {
		return ErrDimensionMismatch
	}

	return nil
}

// normalizeEmpty collapses any zero-dimension shape to the canonical 0×0.
func (m *Matrix) normalizeEmpty() {
	if m.r == 0 || m.c == 0 {
		m.r, m.c = 0, 0
		m.data = m.data[:0]
	}
}
