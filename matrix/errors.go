// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned bare by validators and
// wrapped once with an operation tag by the kernels ("Transpose: ...").
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/ragged -> index -> dimension mismatch -> modulus policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/RowView) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a vector whose length differs from the column count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNilValue indicates that a nil *big.Int was offered as a cell value.
	ErrNilValue = errors.New("matrix: nil value")

	// ErrRagged indicates that input rows do not all have the same length.
	ErrRagged = errors.New("matrix: rows of unequal length")

	// ErrNonPositiveModulus indicates a modulus <= 0 in a reduction kernel.
	ErrNonPositiveModulus = errors.New("matrix: modulus must be > 0")
)
