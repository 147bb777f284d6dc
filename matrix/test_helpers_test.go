// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and kernels.
//   • Compare whole grids with cmp.Diff so a failure prints the exact cell.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/imatrix/matrix"
)

// mustFromRows builds a matrix from row literals or fails the test.
func mustFromRows(tb testing.TB, rows [][]int64, opts ...matrix.Option) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	if err != nil {
		tb.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// mustIdentity returns I_n or fails the test.
func mustIdentity(tb testing.TB, n int) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		tb.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// randomMatrix fills an r×c matrix with small values from a seeded source.
// Values stay within ±50 so products of moderate size never overflow.
func randomMatrix(tb testing.TB, r, c int, seed int64) *matrix.Matrix {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]int64, r)
	for i := range rows {
		rows[i] = make([]int64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(101) - 50
		}
	}

	return mustFromRows(tb, rows)
}

// requireGrid fails the test when m does not hold exactly want.
func requireGrid(tb testing.TB, want [][]int64, m *matrix.Matrix) {
	tb.Helper()
	if m == nil {
		tb.Fatalf("matrix is nil, want %v", want)
	}
	if diff := cmp.Diff(want, m.ToArray()); diff != "" {
		tb.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
}

// requireShape fails the test when m is not rows×cols.
func requireShape(tb testing.TB, rows, cols int, m *matrix.Matrix) {
	tb.Helper()
	if r, c := m.Shape(); r != rows || c != cols {
		tb.Fatalf("shape = %dx%d, want %dx%d", r, c, rows, cols)
	}
}
