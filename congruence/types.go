// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Result is the outcome of Solve.
//
// Solution is one particular solution, nil when the system is inconsistent.
// Null is a basis of the modular null lattice {v : mat·v ≡ 0 (mod moduli)},
// in the row order of the Hermite form. Every solution of the system is
// Solution plus an integer combination of the Null vectors.
type Result[T constraints.Signed] struct {
	Solution []T
	Null     [][]T
}

// Consistent reports whether a particular solution was found.
func (r *Result[T]) Consistent() bool { return r != nil && r.Solution != nil }

// Combine returns Solution + Σ coeffs[k]·Null[k], another solution of the
// same system. The sum is computed exactly and not reduced.
//
// Errors:
//   - ErrNoSolution when the system is inconsistent.
//   - ErrShapeMismatch when len(coeffs) != len(Null).
//   - ErrOverflow when an entry of the sum does not fit T.
func (r *Result[T]) Combine(coeffs []T) ([]T, error) {
	if !r.Consistent() {
		return nil, congruenceErrorf(opCombine, ErrNoSolution)
	}
	if len(coeffs) != len(r.Null) {
		return nil, congruenceErrorf(opCombine,
			fmt.Errorf("%w: %d coefficients for %d null vectors", ErrShapeMismatch, len(coeffs), len(r.Null)))
	}

	acc := toBigs(r.Solution)
	tmp, nv := new(big.Int), new(big.Int)
	for k, c := range coeffs {
		if c == 0 {
			continue
		}
		ck := big.NewInt(int64(c))
		for j, v := range r.Null[k] {
			acc[j].Add(acc[j], tmp.Mul(ck, nv.SetInt64(int64(v))))
		}
	}

	out, err := narrowVec[T](acc)
	if err != nil {
		return nil, congruenceErrorf(opCombine, err)
	}

	return out, nil
}
