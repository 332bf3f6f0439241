// SPDX-License-Identifier: MIT

// Package matrix offers an exact integer dense matrix for lattice work.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix whose cells are *big.Int, so no entry can
//     silently overflow while a lattice is being reduced.
//   - FromRows / NewIdentity constructors that copy caller data, so callers'
//     slices are never aliased or mutated.
//   - Row views (RowView) for in-place row operations in hot kernels.
//   - Small kernels needed by lattice solvers: Transpose, SetBlock,
//     DiagProduct and MatVecMod (multiply-then-reduce under per-row moduli).
//   - Central validators returning package sentinels (see errors.go).
//
// Dense matrices are meant for the small, square lattices produced by
// congruence solvers: O(r*c) memory, one *big.Int per cell.
//
// See the examples in this package and in hnf / congruence for usage.
package matrix
