// SPDX-License-Identifier: MIT

package hnf

import "math/big"

// RowUnimodularUpdate replaces the row pair (rk, rj) by
//
//	rk' = u*rk + v*rj
//	rj' = p*rj - q*rk
//
// on columns [from, len(rk)), reducing every new entry by the centered
// remainder modulo r into (−r/2, r/2].
//
// With (d, u, v) = ExtendedGCD(x, y), p = x/d and q = y/d for the pivot
// entries x = rk[from], y = rj[from], the transform [[u v] [-q p]] has
// determinant u*p + v*q = (u*x + v*y)/d = 1, so the row lattice is
// preserved; afterwards rk'[from] = d and rj'[from] = 0 (before reduction).
//
// Both rows are updated in place; rk and rj must have the same length and
// must not share cells.
func RowUnimodularUpdate(rk, rj []*big.Int, from int, u, v, p, q, r *big.Int) {
	half := new(big.Int).Rsh(r, 1)
	nk, nj, tmp := new(big.Int), new(big.Int), new(big.Int)
	for c := from; c < len(rk); c++ {
		nk.Mul(u, rk[c])
		nk.Add(nk, tmp.Mul(v, rj[c]))

		nj.Mul(p, rj[c])
		nj.Sub(nj, tmp.Mul(q, rk[c]))

		centerMod(rk[c].Set(nk), r, half)
		centerMod(rj[c].Set(nj), r, half)
	}
}

// centerMod reduces z in place into (−r/2, r/2]; half must be ⌊r/2⌋.
func centerMod(z, r, half *big.Int) *big.Int {
	z.Mod(z, r) // Euclidean: [0, r)
	if z.Cmp(half) > 0 {
		z.Sub(z, r)
	}

	return z
}
