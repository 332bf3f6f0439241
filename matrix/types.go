// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// This file intentionally contains ONLY the interface; errors and the
// concrete Dense type live in dedicated files (errors.go, impl_dense.go).
package matrix

import "math/big"

// Matrix represents a two-dimensional mutable array of exact integers.
//
// Values crossing the interface are copies: At returns a fresh *big.Int and
// Set copies its argument, so no caller can alias a cell by accident.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves a copy of the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (*big.Int, error)

	// Set assigns a copy of v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid, ErrNilValue if v is nil.
	Set(i, j int, v *big.Int) error

	// Clone returns a deep copy of the matrix.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
