// Package matrix implements a dense integer matrix value type.
//
// What & Why:
//
//	Matrix stores int64 elements in one contiguous row-major buffer and exposes
//	a 1-based public contract, matching mathematical notation: Element(1, 1) is
//	the top-left cell. It covers construction (NewIdentity, NewZeros, NewFilled,
//	NewCopy, NewFromRows), access (Element, Row, Column, MainDiagonal), in-place
//	structural editing (AppendRow, InsertColumn, RemoveRow, ReplaceElement...),
//	arithmetic (Add, Subtract, MultiplyByScalar, MultiplyByMatrix, Transpose)
//	and structural predicates (IsSquare, IsIdentity, IsTriangular, CanMultiply...).
//
// Value semantics:
//
//	Editing methods mutate the receiver. Arithmetic never mutates its operands
//	and always returns a freshly allocated result; no storage is shared.
//
// Empty matrix:
//
//	0×0 is the only zero-dimension state. Factories given one zero dimension
//	and removals of the last row/column both produce it. It is Null and Empty
//	but not Square.
//
// Overflow:
//
//	Arithmetic fails with ErrOverflow by default. WithOverflowPolicy selects
//	OverflowWrap (native two's-complement) or OverflowSaturate instead.
//
// Errors:
//
//	ErrOutOfRange, ErrDimensionMismatch, ErrInvalidDimensions, ErrNilMatrix and
//	ErrOverflow, always matched with errors.Is. Predicates never fail.
//	Every error-returning method reports ErrNilMatrix for a nil receiver;
//	Rows, Cols, Shape, MinDimension, MainDiagonal and ToArray treat a nil
//	receiver as the empty matrix.
package matrix
