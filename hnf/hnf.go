// SPDX-License-Identifier: MIT

package hnf

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linsolvemod/matrix"
)

// ModularHNF returns the row-style Hermite Normal Form of the lattice
// spanned by the rows of the square, full-rank matrix a, working modulo d,
// a positive multiple of |det a|.
//
// Algorithm Outline (column i, pivot row k = i, working modulus R = d):
//  1. For every row j > k with W[j][i] ≠ 0: (g,u,v) = ExtendedGCD(W[k][i], W[j][i]);
//     RowUnimodularUpdate clears W[j][i] into row k, all entries mod R (centered).
//  2. (g,u,_) = ExtendedGCD(W[k][i], R); row k := u*row k mod R (least
//     non-negative residues), so W[k][i] = g. A zero pivot becomes R.
//  3. For every row j < k: row j -= ⌊W[j][i] / W[k][i]⌋ * row k, so the
//     entries above the pivot fall into [0, W[k][i]).
//  4. R := R / g.
//
// The output is upper triangular with a strictly positive diagonal whose
// product is |det a| (when d is a multiple of it), and spans the same
// lattice as a. The input is never mutated.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare for a bad a.
//   - ErrBadDeterminant for a nil or non-positive d.
//
// Complexity:
//   - Time O(n³) big-integer operations on values bounded by d², Memory O(n²).
func ModularHNF(a matrix.Matrix, d *big.Int, opts ...Option) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, hnfErrorf(opModularHNF, err)
	}
	if d == nil || d.Sign() <= 0 {
		return nil, hnfErrorf(opModularHNF, ErrBadDeterminant)
	}
	o := gatherOptions(opts...)

	// Owned working copy; the caller's matrix is never aliased.
	n := a.Rows()
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, hnfErrorf(opModularHNF, err)
	}
	if err = w.SetBlock(0, 0, a); err != nil {
		return nil, hnfErrorf(opModularHNF, err)
	}
	rows := make([][]*big.Int, n)
	for i := range rows {
		if rows[i], err = w.RowView(i); err != nil {
			return nil, hnfErrorf(opModularHNF, err)
		}
	}

	var (
		i, j, c    int
		g, u, v    *big.Int
		p, q, tmp  = new(big.Int), new(big.Int), new(big.Int)
		r          = new(big.Int).Set(d)
		pivot, row []*big.Int
	)
	for i = 0; i < n; i++ {
		pivot = rows[i]

		// Stage 1: clear column i below the pivot row.
		for j = i + 1; j < n; j++ {
			row = rows[j]
			if row[i].Sign() == 0 {
				continue
			}
			g, u, v = ExtendedGCD(pivot[i], row[i])
			p.Quo(pivot[i], g)
			q.Quo(row[i], g)
			RowUnimodularUpdate(pivot, row, i, u, v, p, q, r)
		}

		// Stage 2: fix the pivot to gcd(W[i][i], R).
		g, u, _ = ExtendedGCD(pivot[i], r)
		for c = i; c < n; c++ {
			pivot[c].Mul(pivot[c], u)
			pivot[c].Mod(pivot[c], r)
		}
		if pivot[i].Sign() == 0 {
			pivot[i].Set(r)
		}

		// Stage 3: reduce the finalized rows above into [0, pivot).
		for j = 0; j < i; j++ {
			row = rows[j]
			q.Div(row[i], pivot[i]) // floor: pivot > 0
			if q.Sign() == 0 {
				continue
			}
			for c = i; c < n; c++ {
				row[c].Sub(row[c], tmp.Mul(q, pivot[c]))
			}
		}

		o.logger.WithFields(logrus.Fields{
			"col":     i,
			"pivot":   pivot[i].String(),
			"modulus": r.String(),
		}).Debug("hnf: pivot fixed")

		// Stage 4: shrink the working modulus.
		r.Quo(r, g)
	}

	return w, nil
}
