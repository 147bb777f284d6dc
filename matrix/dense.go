// SPDX-License-Identifier: MIT

// Package matrix - dense integer storage (row-major) & constructors.
//
// Purpose:
//   - Provide a single contiguous row-major buffer addressed with i*cols + j.
//   - Keep the canonical Empty Matrix (0×0) the only zero-dimension state.
//   - Carry the per-instance overflow policy from one source of truth (options.go).
//
// Complexity quicksheet:
//   - New: O(1); NewZeros/NewFilled/NewIdentity: O(r*c); NewCopy/Clone: O(r*c).

package matrix

// Matrix is a dense row-major matrix of int64 values with 1-based public indexing.
//   - r,c hold dimensions; r==0 implies c==0 and vice versa.
//   - data is a flat buffer of length r*c (offset = (row-1)*c + (col-1)).
//   - overflow is the arithmetic policy inherited by derived matrices.
//
// Editing methods mutate the receiver in place. Arithmetic methods never mutate
// their operands and return a freshly allocated Matrix. A Matrix needs external
// exclusive access while it is being edited; concurrent readers are safe otherwise.
type Matrix struct {
	r, c     int            // row and column counts
	data     []int64        // contiguous row-major storage (len == r*c)
	overflow OverflowPolicy // arithmetic overflow policy
}

// New returns the canonical Empty Matrix, ready for incremental building.
func New(opts ...Option) *Matrix {
	o := gatherOptions(opts...)
	m := &Matrix{overflow: o.overflow}
	if o.capacity > 0 {
		m.data = make([]int64, 0, o.capacity)
	}

	return m
}

// newSized allocates a zero-filled rows×cols matrix after validating the shape.
// A shape with exactly one zero dimension is normalized to the canonical 0×0.
func newSized(tag string, rows, cols int, o Options) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, indexErrorf(tag, rows, cols, ErrInvalidDimensions)
	}
	if rows == 0 || cols == 0 {
		rows, cols = 0, 0
	}
	n := rows * cols
	capacity := n
	if o.capacity > capacity {
		capacity = o.capacity
	}

	return &Matrix{
		r:        rows,
		c:        cols,
		data:     make([]int64, n, capacity), // make() zero-fills deterministically
		overflow: o.overflow,
	}, nil
}

// NewZeros returns a rows×cols matrix with every element 0 (the Null Matrix).
// Negative dimensions yield ErrInvalidDimensions. If either dimension is 0 the
// result is the canonical Empty Matrix.
func NewZeros(rows, cols int, opts ...Option) (*Matrix, error) {
	return newSized("NewZeros", rows, cols, gatherOptions(opts...))
}

// NewFilled returns a rows×cols matrix with every element set to value.
func NewFilled(rows, cols int, value int64, opts ...Option) (*Matrix, error) {
	m, err := newSized("NewFilled", rows, cols, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	if value != 0 {
		for i := range m.data {
			m.data[i] = value
		}
	}

	return m, nil
}

// NewIdentity returns I_size (ones on the main diagonal, zeros elsewhere).
// size==0 yields the canonical Empty Matrix.
func NewIdentity(size int, opts ...Option) (*Matrix, error) {
	m, err := newSized("NewIdentity", size, size, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	// Diagonal offset advances by cols+1 per step.
	for off := 0; off < len(m.data); off += size + 1 {
		m.data[off] = 1
	}

	return m, nil
}

// NewCopy returns a deep copy of src, including its overflow policy.
// The result shares no storage with src.
func NewCopy(src *Matrix) (*Matrix, error) {
	if src == nil {
		return nil, matrixErrorf("NewCopy", ErrNilMatrix)
	}

	return src.Clone(), nil
}

// NewFromRows builds a matrix from row literals, copying the values.
// All rows must have the same length; otherwise ErrDimensionMismatch.
// An empty outer slice, or rows of length 0, yields the canonical Empty Matrix.
func NewFromRows(rows [][]int64, opts ...Option) (*Matrix, error) {
	var cols int
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, indexErrorf("NewFromRows", i+1, len(row), ErrDimensionMismatch)
		}
	}
	m, err := newSized("NewFromRows", len(rows), cols, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	for i := 0; i < m.r; i++ {
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// Clone returns a deep copy with the same shape, data and overflow policy.
// Cloning nil yields nil.
func (m *Matrix) Clone() *Matrix {
	if m == nil {
		return nil
	}
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Matrix{r: m.r, c: m.c, data: cp, overflow: m.overflow}
}

// derive allocates a zero rows×cols result that inherits m's overflow policy.
// Shapes passed here are always products of validated operands.
func (m *Matrix) derive(rows, cols int) *Matrix {
	if rows == 0 || cols == 0 {
		return &Matrix{overflow: m.overflow}
	}

	return &Matrix{
		r:        rows,
		c:        cols,
		data:     make([]int64, rows*cols),
		overflow: m.overflow,
	}
}

// OverflowPolicy reports the arithmetic overflow policy of m
// (DefaultOverflowPolicy for a nil m).
func (m *Matrix) OverflowPolicy() OverflowPolicy { return m.policy() }
