// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of *big.Int cells with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy row views (RowView) for in-place lattice reduction.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) cell allocation; At/Set: O(1); Clone: O(r*c); RowView: O(1).

package matrix

import (
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"       // method tag used in error wrappers
	ctxSet     = "Set"      // method tag used in error wrappers
	ctxRowView = "RowView"  // method tag used in error wrappers
	ctxBlock   = "SetBlock" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//   - Stable, human-friendly messages; preserves sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - every cell is a distinct, never-nil *big.Int owned by the matrix.
type Dense struct {
	r, c int        // row and column counts (>0 for public constructors)
	data []*big.Int // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate the flat buffer and one zero *big.Int per cell.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	buf := make([]*big.Int, rows*cols)
	for i := range buf {
		buf[i] = new(big.Int)
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewIdentity returns the n×n identity matrix.
// Complexity: O(n^2).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i].SetInt64(1)
	}

	return m, nil
}

// FromRows copies a rectangular [][]T into a new Dense.
// MAIN DESCRIPTION:
//   - Ingest caller-owned fixed-width integer rows into exact storage.
//
// Implementation:
//   - Stage 1: ValidateRows (non-empty, rectangular).
//   - Stage 2: copy each value through int64 into its own *big.Int.
//
// Behavior highlights:
//   - The input is never retained or mutated.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty rows), ErrRagged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T constraints.Signed](rows [][]T) (*Dense, error) {
	r, c, err := ValidateRows(rows)
	if err != nil {
		return nil, err
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j].SetInt64(int64(rows[i][j]))
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns a bare sentinel; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns a copy of the value at (row, col) or ErrOutOfRange.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: copy the cell into a fresh *big.Int.
//
// Complexity:
//   - Time O(1) in the number of cells, Space O(bits of the value).
func (m *Dense) At(row, col int) (*big.Int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return new(big.Int).Set(m.data[off]), nil
}

// Set stores a copy of v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNilValue for a nil v.
func (m *Dense) Set(row, col int, v *big.Int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if v == nil {
		return denseErrorf(ctxSet, row, col, ErrNilValue)
	}
	m.data[off].Set(v)

	return nil
}

// SetInt64 stores v at (row, col); same bounds policy as Set.
func (m *Dense) SetInt64(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off].SetInt64(v)

	return nil
}

// RowView returns the live cells of row i.
// MAIN DESCRIPTION:
//   - No-copy window over one row for in-place kernels (HNF row updates).
//
// Behavior highlights:
//   - Mutating the returned *big.Int values mutates the matrix.
//   - The slice header itself must not be re-sliced beyond Cols().
//
// Errors:
//   - ErrOutOfRange when i is not a valid row.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) RowView(i int) ([]*big.Int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// SetBlock copies src into m with its top-left corner at (r0, c0).
//
// Errors:
//   - ErrNilMatrix for a nil src; ErrOutOfRange when the block does not fit.
//
// Complexity:
//   - Time O(src.Rows()*src.Cols()).
func (m *Dense) SetBlock(r0, c0 int, src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return denseErrorf(ctxBlock, r0, c0, err)
	}
	if r0 < 0 || c0 < 0 || r0+src.Rows() > m.r || c0+src.Cols() > m.c {
		return denseErrorf(ctxBlock, r0, c0, ErrOutOfRange)
	}

	var (
		i, j int
		v    *big.Int
		err  error
	)
	// Fast path: copy cell values directly from another Dense.
	if ds, ok := src.(*Dense); ok {
		for i = 0; i < ds.r; i++ {
			for j = 0; j < ds.c; j++ {
				m.data[(r0+i)*m.c+c0+j].Set(ds.data[i*ds.c+j])
			}
		}

		return nil
	}
	for i = 0; i < src.Rows(); i++ {
		for j = 0; j < src.Cols(); j++ {
			if v, err = src.At(i, j); err != nil {
				return denseErrorf(ctxBlock, r0, c0, err)
			}
			m.data[(r0+i)*m.c+c0+j].Set(v)
		}
	}

	return nil
}

// Clone returns a deep copy: new buffer, new cells.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]*big.Int, len(m.data))
	for i, v := range m.data {
		cp[i] = new(big.Int).Set(v)
	}

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders matrix rows as lines with comma-separated values.
// Intended for logs and debugging; not for hot paths.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(m.data[i*m.c+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
