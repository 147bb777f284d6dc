// Package imatrix is a dense integer matrix library.
//
// What is inside:
//
//	matrix/   - the Matrix value type: constructors, 1-based access, in-place
//	            row/column editing, arithmetic with an explicit overflow policy,
//	            and structural predicates (square, triangular, identity...).
//	examples/ - a runnable walkthrough of the public API.
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]int64{{1, 2}, {3, 4}})
//	t, _ := m.Transpose()   // [(1,3),(2,4)]
//	s, _ := m.Add(t)        // [(2,5),(5,8)]
//
//	go get github.com/katalvlaran/imatrix
package imatrix
