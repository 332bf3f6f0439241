// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/linsolvemod/matrix"
)

// MatMulMod returns y with y[i] = (Σ_j mat[i][j]·vec[j]) mod moduli[i],
// computed exactly and reduced to the least non-negative residue. It is the
// check for Solve: MatMulMod(mat, res.Solution, moduli) equals rhs reduced
// mod moduli, and every null vector maps to zeros.
//
// Errors: ErrEmptySystem, ErrShapeMismatch (including len(vec) != cols),
// ErrNonPositiveModulus.
func MatMulMod[T constraints.Signed](mat [][]T, vec, moduli []T) ([]T, error) {
	if err := ValidateSystem(mat, nil, moduli); err != nil {
		return nil, congruenceErrorf(opMatMulMod, err)
	}
	if len(vec) != len(mat[0]) {
		return nil, congruenceErrorf(opMatMulMod,
			fmt.Errorf("%w: vector has %d entries, want %d", ErrShapeMismatch, len(vec), len(mat[0])))
	}

	a, err := matrix.FromRows(mat)
	if err != nil {
		return nil, congruenceErrorf(opMatMulMod, err)
	}
	y, err := matrix.MatVecMod(a, toBigs(vec), toBigs(moduli))
	if err != nil {
		return nil, congruenceErrorf(opMatMulMod, err)
	}
	out, err := narrowVec[T](y)
	if err != nil {
		return nil, congruenceErrorf(opMatMulMod, err)
	}

	return out, nil
}
