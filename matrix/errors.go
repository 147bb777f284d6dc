// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns one of these sentinels (possibly wrapped
// with call-site context) and tests match them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Call sites
// wrap with "Matrix.<Method>(args): %w" so errors.Is keeps working.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> index -> dimension mismatch -> overflow.

var (
	// ErrOutOfRange indicates that a 1-based row or column index is outside
	// [1, Rows()] / [1, Cols()] (or [1, count+1] for insertion).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add with
	// different shapes, Mul where a.Cols != b.Rows, or a row/column whose length
	// does not match the receiver.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidDimensions indicates that a factory was called with a negative size.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOverflow signals that an element computation exceeded the int64 range
	// while the matrix runs under OverflowFail.
	ErrOverflow = errors.New("matrix: integer overflow")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", tag, err)
}

// indexErrorf wraps an error with the operation tag and the offending 1-based coordinates.
func indexErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", tag, row, col, err)
}
