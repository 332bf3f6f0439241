// SPDX-License-Identifier: MIT

// Package hnf computes Hermite Normal Forms of integer lattices modulo a
// known determinant bound.
//
// 🚀 What is the HNF?
//
//	Every full-rank integer lattice (the integer combinations of the rows
//	of a matrix A) has a unique basis in Hermite Normal Form: upper
//	triangular, strictly positive diagonal, every entry above a pivot
//	reduced into [0, pivot). Two matrices span the same lattice iff their
//	HNFs are equal, and the HNF is reachable from A by unimodular row
//	operations only (integer row operations of determinant ±1).
//
// ✨ Key features:
//   - ExtendedGCD: gcd plus Bézout coefficients valid for signed inputs.
//   - RowUnimodularUpdate: the 2×2 determinant-1 row combination used to
//     clear one entry, reduced under a modulus.
//   - ModularHNF: the modular algorithm (Domich–Kannan–Trotter, as in
//     Cohen's "HNF modulo D"): every intermediate entry is kept in
//     (−R/2, R/2] for a working modulus R that starts at a multiple D of
//     the lattice determinant and shrinks by each pivot found. Coefficient
//     growth is bounded by D no matter how many eliminations occur.
//
// ⚙️ Usage:
//
//	h, err := hnf.ModularHNF(a, det)            // det = |det a| or a multiple
//	h, err := hnf.ModularHNF(a, det, hnf.WithLogger(log))
//
// Preconditions:
//
//	a must be square and of full rank, and D a positive multiple of |det a|.
//	Shape and sign are checked; a D that is not a multiple of the lattice
//	determinant is NOT detectable cheaply and yields a wrong result.
//
// Performance:
//
//   - Time:   O(n³) big-integer operations on values bounded by D².
//   - Memory: O(n²) cells.
package hnf
