// SPDX-License-Identifier: MIT
// Package matrix provides the few exact-integer kernels lattice solvers
// need: transpose, diagonal product and matrix–vector product under per-row
// moduli. All functions perform strict fail-fast validation and return
// clear errors on dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf.
//   - Operands are never mutated; results are freshly allocated.

package matrix

import (
	"fmt"
	"math/big"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose   = "Transpose"
	opDiagProduct = "DiagProduct"
	opMatVecMod   = "MatVecMod"
)

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new c×r matrix with out[j][i] = m[i][j].
//
// Implementation:
//   - Stage 1: ValidateNotNil, allocate result Dense(cols, rows).
//   - Stage 2: Fast-path on *Dense (flat walk), fallback via At.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i].Set(dm.data[i*cols+j])
			}
		}

		return res, nil
	}

	var v *big.Int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i].Set(v)
		}
	}

	return res, nil
}

// DiagProduct returns Π m[i][i] over the main diagonal of a square matrix.
// For a triangular matrix this is its determinant.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n) multiplications.
func DiagProduct(m Matrix) (*big.Int, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiagProduct, err)
	}

	prod := big.NewInt(1)
	for i := 0; i < m.Rows(); i++ {
		v, err := m.At(i, i)
		if err != nil {
			return nil, matrixErrorf(opDiagProduct, err)
		}
		prod.Mul(prod, v)
	}

	return prod, nil
}

// MatVecMod computes y[i] = (Σ_j m[i][j]*x[j]) mod moduli[i].
// MAIN DESCRIPTION:
//   - Exact product followed by a per-row reduction; the residue is the
//     least non-negative one, whatever the signs of m and x.
//
// Implementation:
//   - Stage 1: validate m (non-nil), x (len == Cols), moduli (len == Rows, all > 0).
//   - Stage 2: accumulate each row in a fresh *big.Int, then reduce with Mod.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNilValue, ErrNonPositiveModulus.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVecMod(m Matrix, x, moduli []*big.Int) ([]*big.Int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}
	if err := ValidateModuli(moduli, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatVecMod, err)
	}

	var (
		i, j int
		v    *big.Int
		err  error
	)
	rows, cols := m.Rows(), m.Cols()
	dm, fast := m.(*Dense)
	out := make([]*big.Int, rows)
	tmp := new(big.Int)
	for i = 0; i < rows; i++ {
		acc := new(big.Int)
		for j = 0; j < cols; j++ {
			if fast {
				v = dm.data[i*cols+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVecMod, err)
			}
			acc.Add(acc, tmp.Mul(v, x[j]))
		}
		out[i] = acc.Mod(acc, moduli[i]) // Euclidean: result in [0, moduli[i])
	}

	return out, nil
}
