// SPDX-License-Identifier: MIT

package hnf

import "math/big"

// ExtendedGCD returns d = gcd(|a|, |b|) >= 0 and Bézout coefficients s, t
// with s*a + t*b = d for the signed inputs.
//
// Algorithm:
//  1. Run the iterative Euclidean algorithm on |a|, |b|, carrying the
//     two-term recurrences (s_{k+1} = s_{k-1} - q*s_k, likewise for t).
//  2. Flip the sign of s if a < 0 and of t if b < 0, so the identity holds
//     for the signed operands.
//
// Edge cases:
//   - (0, b) → (|b|, 0, sign(b)); (a, 0) → (|a|, sign(a), 0); (0, 0) → (0, 1, 0).
//
// The inputs are never mutated and the outputs are freshly allocated.
func ExtendedGCD(a, b *big.Int) (d, s, t *big.Int) {
	r0, r1 := new(big.Int).Abs(a), new(big.Int).Abs(b)
	s0, s1 := big.NewInt(1), new(big.Int)
	t0, t1 := new(big.Int), big.NewInt(1)

	q, tmp := new(big.Int), new(big.Int)
	for r1.Sign() != 0 {
		q.Quo(r0, r1)

		// (r0, r1) = (r1, r0 - q*r1)
		r0.Sub(r0, tmp.Mul(q, r1))
		r0, r1 = r1, r0

		// (s0, s1) = (s1, s0 - q*s1)
		s0.Sub(s0, tmp.Mul(q, s1))
		s0, s1 = s1, s0

		// (t0, t1) = (t1, t0 - q*t1)
		t0.Sub(t0, tmp.Mul(q, t1))
		t0, t1 = t1, t0
	}

	if a.Sign() < 0 {
		s0.Neg(s0)
	}
	if b.Sign() < 0 {
		t0.Neg(t0)
	}

	return r0, s0, t0
}
