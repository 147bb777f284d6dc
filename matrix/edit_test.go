// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for in-place structural editing.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/imatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestBuildFromEmpty grows a matrix row by row starting from the empty state.
func TestBuildFromEmpty(t *testing.T) {
	m := matrix.New()
	require.NoError(t, m.InsertRow([]int64{1, 2, 3}, 1))
	requireShape(t, 1, 3, m)

	require.NoError(t, m.AppendRow([]int64{4, 5, 6}))
	requireShape(t, 2, 3, m)
	requireGrid(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, m)
}

// TestAppendColumnFromEmpty checks that the first column fixes the row count.
func TestAppendColumnFromEmpty(t *testing.T) {
	m := matrix.New(matrix.WithCapacity(6))
	require.NoError(t, m.AppendColumn([]int64{1, 2}))
	requireShape(t, 2, 1, m)
	require.NoError(t, m.AppendColumn([]int64{3, 4}))
	require.NoError(t, m.AppendColumn([]int64{5, 6}))
	requireGrid(t, [][]int64{{1, 3, 5}, {2, 4, 6}}, m)
}

// TestInsertRowPositions covers front, middle and append positions.
func TestInsertRowPositions(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 1}, {3, 3}})

	require.NoError(t, m.InsertRow([]int64{2, 2}, 2))
	requireGrid(t, [][]int64{{1, 1}, {2, 2}, {3, 3}}, m)

	require.NoError(t, m.InsertRow([]int64{0, 0}, 1))
	requireGrid(t, [][]int64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}, m)

	require.NoError(t, m.InsertRow([]int64{4, 4}, m.Rows()+1))
	requireGrid(t, [][]int64{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, m)
}

// TestInsertColumnPositions covers front, middle and append positions.
func TestInsertColumnPositions(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 3}, {4, 6}})

	require.NoError(t, m.InsertColumn([]int64{2, 5}, 2))
	requireGrid(t, [][]int64{{1, 2, 3}, {4, 5, 6}}, m)

	require.NoError(t, m.InsertColumn([]int64{0, 0}, 1))
	requireGrid(t, [][]int64{{0, 1, 2, 3}, {0, 4, 5, 6}}, m)

	require.NoError(t, m.InsertColumn([]int64{9, 9}, 5))
	requireGrid(t, [][]int64{{0, 1, 2, 3, 9}, {0, 4, 5, 6, 9}}, m)
}

// TestEditRejectsWithoutMutation verifies that failing edits leave the receiver intact.
func TestEditRejectsWithoutMutation(t *testing.T) {
	orig := [][]int64{{1, 2}, {3, 4}}
	tests := []struct {
		name    string
		edit    func(m *matrix.Matrix) error
		wantErr error
	}{
		{"append short row", func(m *matrix.Matrix) error { return m.AppendRow([]int64{1}) }, matrix.ErrDimensionMismatch},
		{"append long column", func(m *matrix.Matrix) error { return m.AppendColumn([]int64{1, 2, 3}) }, matrix.ErrDimensionMismatch},
		{"append empty row", func(m *matrix.Matrix) error { return m.AppendRow(nil) }, matrix.ErrDimensionMismatch},
		{"insert row at 0", func(m *matrix.Matrix) error { return m.InsertRow([]int64{5, 5}, 0) }, matrix.ErrOutOfRange},
		{"insert row past end", func(m *matrix.Matrix) error { return m.InsertRow([]int64{5, 5}, 4) }, matrix.ErrOutOfRange},
		{"insert column past end", func(m *matrix.Matrix) error { return m.InsertColumn([]int64{5, 5}, 4) }, matrix.ErrOutOfRange},
		{"insert column wrong length", func(m *matrix.Matrix) error { return m.InsertColumn([]int64{5}, 1) }, matrix.ErrDimensionMismatch},
		{"remove row 3", func(m *matrix.Matrix) error { return m.RemoveRow(3) }, matrix.ErrOutOfRange},
		{"remove column 0", func(m *matrix.Matrix) error { return m.RemoveColumn(0) }, matrix.ErrOutOfRange},
		{"replace out of range", func(m *matrix.Matrix) error { return m.ReplaceElement(1, 3, 9) }, matrix.ErrOutOfRange},
		{"set nil", func(m *matrix.Matrix) error { return m.SetMatrix(nil) }, matrix.ErrNilMatrix},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustFromRows(t, orig)
			require.ErrorIs(t, tc.edit(m), tc.wantErr)
			requireGrid(t, orig, m)
		})
	}
}

// TestAppendEmptyToEmpty rejects a zero-length first row or column.
func TestAppendEmptyToEmpty(t *testing.T) {
	m := matrix.New()
	require.ErrorIs(t, m.AppendRow([]int64{}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.AppendColumn(nil), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.InsertRow([]int64{1}, 2), matrix.ErrOutOfRange)
	require.True(t, m.IsEmpty())
}

// TestRemoveRowColumn checks gap closing in both directions.
func TestRemoveRowColumn(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	require.NoError(t, m.RemoveRow(2))
	requireGrid(t, [][]int64{{1, 2, 3}, {7, 8, 9}}, m)

	require.NoError(t, m.RemoveColumn(1))
	requireGrid(t, [][]int64{{2, 3}, {8, 9}}, m)

	require.NoError(t, m.RemoveColumn(2))
	requireGrid(t, [][]int64{{2}, {8}}, m)
}

// TestRemoveLastLineYieldsEmpty ensures no N×0 or 0×N state survives.
func TestRemoveLastLineYieldsEmpty(t *testing.T) {
	row := mustFromRows(t, [][]int64{{1, 2, 3}})
	require.NoError(t, row.RemoveRow(1))
	requireShape(t, 0, 0, row)
	require.True(t, row.IsEmpty())

	col := mustFromRows(t, [][]int64{{1}, {2}, {3}})
	require.NoError(t, col.RemoveColumn(1))
	requireShape(t, 0, 0, col)
	require.True(t, col.IsEmpty())

	// The emptied matrix can be rebuilt with a different width.
	require.NoError(t, row.AppendRow([]int64{7, 8}))
	requireGrid(t, [][]int64{{7, 8}}, row)
}

// TestReplaceElement overwrites one cell in place.
func TestReplaceElement(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	require.NoError(t, m.ReplaceElement(2, 1, -3))
	requireGrid(t, [][]int64{{1, 2}, {-3, 4}}, m)
}

// TestSetMatrix replaces contents with an independent deep copy.
func TestSetMatrix(t *testing.T) {
	m := mustFromRows(t, [][]int64{{1}})
	src := mustFromRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})

	require.NoError(t, m.SetMatrix(src))
	require.True(t, m.IsEqual(src))

	require.NoError(t, src.ReplaceElement(1, 1, 0))
	v, _ := m.Element(1, 1)
	require.Equal(t, int64(1), v)

	// Shrinking reuses the buffer and still copies.
	require.NoError(t, m.SetMatrix(mustFromRows(t, [][]int64{{9}})))
	requireGrid(t, [][]int64{{9}}, m)

	require.NoError(t, m.SetMatrix(m))
	requireGrid(t, [][]int64{{9}}, m)

	require.NoError(t, m.SetMatrix(matrix.New()))
	require.True(t, m.IsEmpty())
}

// TestEditNilReceiver: every editing method reports ErrNilMatrix instead of panicking.
func TestEditNilReceiver(t *testing.T) {
	var m *matrix.Matrix
	src := mustIdentity(t, 2)
	edits := map[string]func() error{
		"SetMatrix":      func() error { return m.SetMatrix(src) },
		"AppendRow":      func() error { return m.AppendRow([]int64{1}) },
		"AppendColumn":   func() error { return m.AppendColumn([]int64{1}) },
		"InsertRow":      func() error { return m.InsertRow([]int64{1}, 1) },
		"InsertColumn":   func() error { return m.InsertColumn([]int64{1}, 1) },
		"RemoveRow":      func() error { return m.RemoveRow(1) },
		"RemoveColumn":   func() error { return m.RemoveColumn(1) },
		"ReplaceElement": func() error { return m.ReplaceElement(1, 1, 7) },
	}
	for name, edit := range edits {
		t.Run(name, func(t *testing.T) {
			require.NotPanics(t, func() {
				require.ErrorIs(t, edit(), matrix.ErrNilMatrix)
			})
		})
	}
}
