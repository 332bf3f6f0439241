// SPDX-License-Identifier: MIT

// Package congruence - augmented lattice construction.
//
// Layout of the solve lattice for mat (m×n), size N = n+m+1:
//
//	         cols 0..m-1        col m   cols m+1..m+n
//	row 0    -rhs               1       0
//	row 1..n matᵀ               0       I(n)
//	row n+1  diag(moduli)       0       0
//
// A lattice vector is c·row0 + Σ x_j·row(j+1) + Σ k_i·q_i·e_i; it is zero on
// the first m columns iff mat·x ≡ c·rhs (mod moduli), and then its tag
// columns read (c, x). The null lattice drops row 0 and column m.
package congruence

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/linsolvemod/matrix"
)

// BuildSolveLattice assembles the (n+m+1)-square lattice encoding
// mat·x ≡ rhs (mod moduli) and returns it with its determinant bound
// D = Π moduli (the lattice determinant up to sign).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil mat.
//   - ErrShapeMismatch when rhs or moduli length differs from mat.Rows().
//   - ErrNonPositiveModulus for a nil or non-positive modulus.
//
// Complexity: O((n+m)²) cells.
func BuildSolveLattice(mat matrix.Matrix, rhs, moduli []*big.Int) (*matrix.Dense, *big.Int, error) {
	if err := matrix.ValidateNotNil(mat); err != nil {
		return nil, nil, congruenceErrorf(opBuildSolve, err)
	}
	m := mat.Rows()
	if len(rhs) != m {
		return nil, nil, congruenceErrorf(opBuildSolve,
			fmt.Errorf("%w: rhs has %d entries, want %d", ErrShapeMismatch, len(rhs), m))
	}
	d, err := moduliProduct(moduli, m)
	if err != nil {
		return nil, nil, congruenceErrorf(opBuildSolve, err)
	}

	lat, err := layout(mat, moduli, 1)
	if err != nil {
		return nil, nil, congruenceErrorf(opBuildSolve, err)
	}
	neg := new(big.Int)
	for j, b := range rhs {
		if b == nil {
			return nil, nil, congruenceErrorf(opBuildSolve, matrix.ErrNilValue)
		}
		if err = lat.Set(0, j, neg.Neg(b)); err != nil {
			return nil, nil, congruenceErrorf(opBuildSolve, err)
		}
	}

	return lat, d, nil
}

// BuildNullLattice assembles the (n+m)-square lattice encoding
// mat·x ≡ 0 (mod moduli), with D = Π moduli.
//
// Errors: as BuildSolveLattice, without the rhs check.
func BuildNullLattice(mat matrix.Matrix, moduli []*big.Int) (*matrix.Dense, *big.Int, error) {
	if err := matrix.ValidateNotNil(mat); err != nil {
		return nil, nil, congruenceErrorf(opBuildNull, err)
	}
	d, err := moduliProduct(moduli, mat.Rows())
	if err != nil {
		return nil, nil, congruenceErrorf(opBuildNull, err)
	}
	lat, err := layout(mat, moduli, 0)
	if err != nil {
		return nil, nil, congruenceErrorf(opBuildNull, err)
	}

	return lat, d, nil
}

// layout writes the blocks shared by both variants. off is the number of
// leading rows reserved for inhomogeneous terms (1 for solve, 0 for null):
// matᵀ starts at row off, the moduli diagonal at row off+n, and the tag
// block covers rows 0..off+n-1 from column m.
func layout(mat matrix.Matrix, moduli []*big.Int, off int) (*matrix.Dense, error) {
	m, n := mat.Rows(), mat.Cols()
	size := n + m + off

	lat, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, err
	}
	mt, err := matrix.Transpose(mat)
	if err != nil {
		return nil, err
	}
	if err = lat.SetBlock(off, 0, mt); err != nil {
		return nil, err
	}
	for i, q := range moduli {
		if err = lat.Set(off+n+i, i, q); err != nil {
			return nil, err
		}
	}
	tags, err := matrix.NewIdentity(n + off)
	if err != nil {
		return nil, err
	}
	if err = lat.SetBlock(0, m, tags); err != nil {
		return nil, err
	}

	return lat, nil
}

// moduliProduct checks one positive modulus per row and returns Π moduli.
func moduliProduct(moduli []*big.Int, rows int) (*big.Int, error) {
	if len(moduli) != rows {
		return nil, fmt.Errorf("%w: %d moduli for %d rows", ErrShapeMismatch, len(moduli), rows)
	}
	d := big.NewInt(1)
	for i, q := range moduli {
		if q == nil || q.Sign() <= 0 {
			return nil, fmt.Errorf("%w: moduli[%d] = %v", ErrNonPositiveModulus, i, q)
		}
		d.Mul(d, q)
	}

	return d, nil
}
