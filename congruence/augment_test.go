// SPDX-License-Identifier: MIT
package congruence_test

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolvemod/congruence"
	"github.com/katalvlaran/linsolvemod/hnf"
	"github.com/katalvlaran/linsolvemod/matrix"
)

func bigs(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}

	return out
}

func mustRows(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestBuildSolveLattice_Layout(t *testing.T) {
	// 2x3 system: m=2 equations, n=3 variables, size 6.
	mat := mustRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	lat, d, err := congruence.BuildSolveLattice(mat, bigs(7, -8), bigs(10, 11))
	require.NoError(t, err)
	assert.Equal(t, int64(110), d.Int64())

	want := mustRows(t, [][]int64{
		{-7, 8, 1, 0, 0, 0},
		{1, 4, 0, 1, 0, 0},
		{2, 5, 0, 0, 1, 0},
		{3, 6, 0, 0, 0, 1},
		{10, 0, 0, 0, 0, 0},
		{0, 11, 0, 0, 0, 0},
	})
	assert.Equal(t, want.String(), lat.String())
}

// Wide systems (n > m) get an (n+m+1)-square lattice with the tag
// identity starting at column m.
func TestBuildSolveLattice_Wide(t *testing.T) {
	tc := systems[6] // 4x6 mixed moduli
	m, n := len(tc.mat), len(tc.mat[0])
	lat, d, err := congruence.BuildSolveLattice(mustRows(t, tc.mat), bigs(tc.rhs...), bigs(tc.moduli...))
	require.NoError(t, err)
	require.Equal(t, n+m+1, lat.Rows())
	require.Equal(t, n+m+1, lat.Cols())
	assert.Equal(t, int64(3*5*7*11), d.Int64())

	for i := 0; i <= n; i++ {
		for j := m; j < n+m+1; j++ {
			v, err := lat.At(i, j)
			require.NoError(t, err)
			want := int64(0)
			if j == m+i {
				want = 1
			}
			assert.Equal(t, want, v.Int64(), "tag cell [%d,%d]", i, j)
		}
	}
	for i := n + 1; i < n+m+1; i++ {
		for j := m; j < n+m+1; j++ {
			v, err := lat.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v.Sign(), "modulus row %d has no tag", i)
		}
	}

	res, err := congruence.Solve(tc.mat, tc.rhs, tc.moduli)
	require.NoError(t, err)
	requireValid(t, tc.mat, tc.rhs, tc.moduli, res)
}

func TestBuildNullLattice_Layout(t *testing.T) {
	mat := mustRows(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	lat, d, err := congruence.BuildNullLattice(mat, bigs(10, 11))
	require.NoError(t, err)
	assert.Equal(t, int64(110), d.Int64())

	want := mustRows(t, [][]int64{
		{1, 4, 1, 0, 0},
		{2, 5, 0, 1, 0},
		{3, 6, 0, 0, 1},
		{10, 0, 0, 0, 0},
		{0, 11, 0, 0, 0},
	})
	assert.Equal(t, want.String(), lat.String())
}

func TestBuildLattice_Errors(t *testing.T) {
	mat := mustRows(t, [][]int64{{1, 2}})

	_, _, err := congruence.BuildSolveLattice(nil, bigs(1), bigs(2))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = congruence.BuildSolveLattice(mat, bigs(1, 2), bigs(2))
	assert.ErrorIs(t, err, congruence.ErrShapeMismatch)

	_, _, err = congruence.BuildSolveLattice(mat, bigs(1), bigs(0))
	assert.ErrorIs(t, err, congruence.ErrNonPositiveModulus)

	_, _, err = congruence.BuildSolveLattice(mat, []*big.Int{nil}, bigs(2))
	assert.ErrorIs(t, err, matrix.ErrNilValue)

	_, _, err = congruence.BuildNullLattice(mat, []*big.Int{nil})
	assert.ErrorIs(t, err, congruence.ErrNonPositiveModulus)

	_, _, err = congruence.BuildNullLattice(mat, bigs(2, 3))
	assert.ErrorIs(t, err, congruence.ErrShapeMismatch)
}

// The augmented lattice has determinant ±Π moduli, so the diagonal of its
// Hermite form multiplies out to exactly D.
func TestSolveLattice_DeterminantConsistency(t *testing.T) {
	for _, tc := range systems {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			lat, d, err := congruence.BuildSolveLattice(mustRows(t, tc.mat), bigs(tc.rhs...), bigs(tc.moduli...))
			require.NoError(t, err)
			h, err := hnf.ModularHNF(lat, d)
			require.NoError(t, err)

			prod, err := matrix.DiagProduct(h)
			require.NoError(t, err)
			assert.Zero(t, prod.Cmp(d), "diag product %s, D %s", prod, d)
		})
	}
}

func TestExtractSolution_Idempotent(t *testing.T) {
	tc := systems[3]
	m, n := len(tc.mat), len(tc.mat[0])
	lat, d, err := congruence.BuildSolveLattice(mustRows(t, tc.mat), bigs(tc.rhs...), bigs(tc.moduli...))
	require.NoError(t, err)
	h, err := hnf.ModularHNF(lat, d)
	require.NoError(t, err)
	before := h.String()

	sol1, null1, err := congruence.ExtractSolution(h, m, n)
	require.NoError(t, err)
	sol2, null2, err := congruence.ExtractSolution(h, m, n)
	require.NoError(t, err)

	require.NotNil(t, sol1)
	cmpBig := cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })
	assert.True(t, cmp.Equal(sol1, sol2, cmpBig))
	assert.True(t, cmp.Equal(null1, null2, cmpBig))
	assert.Equal(t, before, h.String(), "extraction must not modify the lattice")
}

func TestExtractSolution_Exact(t *testing.T) {
	// Hermite form of the lattice for 2x ≡ 1 (mod 3).
	h := mustRows(t, [][]int64{{1, 0, 2}, {0, 1, 2}, {0, 0, 3}})
	sol, null, err := congruence.ExtractSolution(h, 1, 1)
	require.NoError(t, err)
	require.Len(t, sol, 1)
	assert.Equal(t, int64(2), sol[0].Int64())
	require.Len(t, null, 1)
	assert.Equal(t, int64(3), null[0][0].Int64())

	// Pivot 2 in the rhs column: no solution row.
	h = mustRows(t, [][]int64{{1, 1, 1}, {0, 2, 1}, {0, 0, 2}})
	sol, null, err = congruence.ExtractSolution(h, 1, 1)
	require.NoError(t, err)
	assert.Nil(t, sol)
	require.Len(t, null, 1)
	assert.Equal(t, int64(2), null[0][0].Int64())
}

func TestExtract_Errors(t *testing.T) {
	h := mustRows(t, [][]int64{{1, 0}, {0, 1}})

	_, _, err := congruence.ExtractSolution(nil, 1, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = congruence.ExtractSolution(h, 1, 1)
	assert.ErrorIs(t, err, congruence.ErrShapeMismatch)

	_, err = congruence.ExtractNull(h, 1, 2)
	assert.ErrorIs(t, err, congruence.ErrShapeMismatch)

	_, err = congruence.ExtractNull(mustRows(t, [][]int64{{1, 0, 0}}), 1, 2)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	null, err := congruence.ExtractNull(h, 1, 1)
	require.NoError(t, err)
	require.Len(t, null, 1)
	assert.Equal(t, int64(1), null[0][0].Int64())
}
