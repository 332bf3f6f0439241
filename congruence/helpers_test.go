// SPDX-License-Identifier: MIT
package congruence_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/linsolvemod/congruence"
)

// reduced returns v[i] mod moduli[i] as the least non-negative residue.
func reduced[T constraints.Signed](v, moduli []T) []T {
	out := make([]T, len(v))
	for i := range v {
		r := v[i] % moduli[i]
		if r < 0 {
			r += moduli[i]
		}
		out[i] = r
	}

	return out
}

// requireValid checks that res.Solution satisfies the system and that every
// null vector maps to zero.
func requireValid[T constraints.Signed](t *testing.T, mat [][]T, rhs, moduli []T, res *congruence.Result[T]) {
	t.Helper()
	require.NotNil(t, res)
	require.True(t, res.Consistent(), "expected a solution")
	require.Len(t, res.Solution, len(mat[0]))

	got, err := congruence.MatMulMod(mat, res.Solution, moduli)
	require.NoError(t, err)
	if diff := cmp.Diff(reduced(rhs, moduli), got); diff != "" {
		t.Fatalf("mat·solution mismatch (-want +got):\n%s", diff)
	}
	requireNull(t, mat, moduli, res.Null)
}

// requireNull checks that every vector maps to the zero vector.
func requireNull[T constraints.Signed](t *testing.T, mat [][]T, moduli []T, null [][]T) {
	t.Helper()
	zero := make([]T, len(mat))
	for k, v := range null {
		require.Len(t, v, len(mat[0]), "null vector %d", k)
		got, err := congruence.MatMulMod(mat, v, moduli)
		require.NoError(t, err)
		if diff := cmp.Diff(zero, got); diff != "" {
			t.Fatalf("null vector %d = %v does not vanish (-want +got):\n%s", k, v, diff)
		}
	}
}
