// SPDX-License-Identifier: MIT
package hnf_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolvemod/matrix"
)

// mustRows builds a *matrix.Dense from int64 rows or fails the test.
func mustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// cells reads every cell of m as a [][]*big.Int copy.
func cells(t testing.TB, m matrix.Matrix) [][]*big.Int {
	t.Helper()
	out := make([][]*big.Int, m.Rows())
	for i := range out {
		out[i] = make([]*big.Int, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

// determinant computes det(m) exactly by Gaussian elimination over big.Rat.
func determinant(t testing.TB, m matrix.Matrix) *big.Int {
	t.Helper()
	n := m.Rows()
	a := make([][]*big.Rat, n)
	for i, row := range cells(t, m) {
		a[i] = make([]*big.Rat, n)
		for j, v := range row {
			a[i][j] = new(big.Rat).SetInt(v)
		}
	}

	det := big.NewRat(1, 1)
	tmp := new(big.Rat)
	for c := 0; c < n; c++ {
		p := -1
		for r := c; r < n; r++ {
			if a[r][c].Sign() != 0 {
				p = r
				break
			}
		}
		if p < 0 {
			return new(big.Int)
		}
		if p != c {
			a[p], a[c] = a[c], a[p]
			det.Neg(det)
		}
		det.Mul(det, a[c][c])
		for r := c + 1; r < n; r++ {
			if a[r][c].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Quo(a[r][c], a[c][c])
			for k := c; k < n; k++ {
				a[r][k].Sub(a[r][k], tmp.Mul(f, a[c][k]))
			}
		}
	}
	require.True(t, det.IsInt())

	return new(big.Int).Set(det.Num())
}

// requireHermiteForm asserts h is upper triangular with a positive diagonal
// and every entry above a pivot in [0, pivot).
func requireHermiteForm(t testing.TB, h matrix.Matrix) {
	t.Helper()
	w := cells(t, h)
	for i := range w {
		require.Positive(t, w[i][i].Sign(), "diagonal %d must be > 0", i)
		for j := 0; j < i; j++ {
			require.Zero(t, w[i][j].Sign(), "entry [%d,%d] below the diagonal", i, j)
		}
		for j := 0; j < i; j++ {
			require.GreaterOrEqual(t, w[j][i].Sign(), 0, "entry [%d,%d] above pivot < 0", j, i)
			require.Negative(t, w[j][i].Cmp(w[i][i]), "entry [%d,%d] above pivot >= pivot", j, i)
		}
	}
}

// inLattice reports whether vec is an integer combination of the rows of
// the upper-triangular h (forward substitution on the pivots).
func inLattice(h [][]*big.Int, vec []*big.Int) bool {
	rest := make([]*big.Int, len(vec))
	for i, v := range vec {
		rest[i] = new(big.Int).Set(v)
	}
	q, r, tmp := new(big.Int), new(big.Int), new(big.Int)
	for i := range h {
		q.QuoRem(rest[i], h[i][i], r)
		if r.Sign() != 0 {
			return false
		}
		for j := i; j < len(rest); j++ {
			rest[j].Sub(rest[j], tmp.Mul(q, h[i][j]))
		}
	}

	return true
}

// randomFullRank draws an n×n matrix with entries in [-span, span] and a
// non-zero determinant.
func randomFullRank(t testing.TB, rng *rand.Rand, n int, span int64) (*matrix.Dense, *big.Int) {
	t.Helper()
	for {
		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = make([]int64, n)
			for j := range rows[i] {
				rows[i][j] = rng.Int63n(2*span+1) - span
			}
		}
		m := mustRows(t, rows)
		if det := determinant(t, m); det.Sign() != 0 {
			return m, det.Abs(det)
		}
	}
}
