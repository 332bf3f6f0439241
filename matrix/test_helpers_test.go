// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.

package matrix_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/linsolvemod/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths of the kernels under test.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from int64 rows or fails the test.
func MustFromRows(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) *big.Int {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts m equals want cell by cell.
func CompareExact(t *testing.T, want [][]int64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) || m.Cols() != len(want[0]) {
		t.Fatalf("shape mismatch: got %dx%d, want %dx%d", m.Rows(), m.Cols(), len(want), len(want[0]))
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		for j = 0; j < len(want[i]); j++ {
			if got := MustAt(t, m, i, j); got.Cmp(big.NewInt(want[i][j])) != 0 {
				t.Fatalf("mismatch at [%d,%d]: got %s, want %d", i, j, got, want[i][j])
			}
		}
	}
}

// bigs converts int64 values into fresh *big.Int values.
func bigs(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}

	return out
}
