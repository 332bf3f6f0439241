// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/modulus checks here.
//  - Return sentinel errors wrapped once with the validator tag so call sites
//    can wrap uniformly and callers can still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square).

package matrix

import (
	"fmt"
	"math/big"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// A typed-nil *Dense hidden in the interface is rejected as well.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n
// and that it holds no nil entries.
// Time: O(n). Space: O(1).
func ValidateVecLen(x []*big.Int, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}
	for _, v := range x {
		if v == nil {
			return validatorErrorf("ValidateVecLen", ErrNilValue)
		}
	}

	return nil
}

// ValidateModuli ensures there is exactly one modulus per row (n) and that
// every modulus is strictly positive.
//
// Errors: ErrDimensionMismatch, ErrNilValue, ErrNonPositiveModulus.
// Time: O(n).
func ValidateModuli(moduli []*big.Int, n int) error {
	if err := ValidateVecLen(moduli, n); err != nil {
		return validatorErrorf("ValidateModuli", err)
	}
	for _, q := range moduli {
		if q.Sign() <= 0 {
			return validatorErrorf("ValidateModuli", ErrNonPositiveModulus)
		}
	}

	return nil
}

// ValidateRows checks that rows describe a non-empty rectangular matrix and
// reports its shape.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrRagged when any row length differs from the first.
//
// Complexity: O(r).
func ValidateRows[T any](rows [][]T) (r, c int, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}
	r, c = len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return 0, 0, validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrRagged)
		}
	}

	return r, c, nil
}
