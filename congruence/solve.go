// SPDX-License-Identifier: MIT

package congruence

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/linsolvemod/hnf"
	"github.com/katalvlaran/linsolvemod/matrix"
)

// ValidateSystem checks the preconditions shared by Solve, NullSpace and
// MatMulMod: mat is non-empty and rectangular, there is one modulus per
// row and every modulus is > 0. A nil rhs denotes a homogeneous system and
// skips the rhs length check.
//
// Errors: ErrEmptySystem, ErrShapeMismatch, ErrNonPositiveModulus.
// Complexity: O(m).
func ValidateSystem[T constraints.Signed](mat [][]T, rhs, moduli []T) error {
	m, _, err := matrix.ValidateRows(mat)
	switch {
	case errors.Is(err, matrix.ErrInvalidDimensions):
		return congruenceErrorf(opValidate, ErrEmptySystem)
	case err != nil:
		return congruenceErrorf(opValidate, fmt.Errorf("%w: %v", ErrShapeMismatch, err))
	}
	if rhs != nil && len(rhs) != m {
		return congruenceErrorf(opValidate,
			fmt.Errorf("%w: rhs has %d entries, want %d", ErrShapeMismatch, len(rhs), m))
	}
	if len(moduli) != m {
		return congruenceErrorf(opValidate,
			fmt.Errorf("%w: %d moduli for %d rows", ErrShapeMismatch, len(moduli), m))
	}
	for i, q := range moduli {
		if q <= 0 {
			return congruenceErrorf(opValidate,
				fmt.Errorf("%w: moduli[%d] = %d", ErrNonPositiveModulus, i, q))
		}
	}

	return nil
}

// Solve finds one x with (mat·x)[i] ≡ rhs[i] (mod moduli[i]) for every row,
// and a basis of the null lattice {v : mat·v ≡ 0}.
//
// Implementation:
//   - Stage 1: ValidateSystem; a nil rhs is the zero vector.
//   - Stage 2: BuildSolveLattice with D = Π moduli.
//   - Stage 3: hnf.ModularHNF(lattice, D).
//   - Stage 4: ExtractSolution, then narrow every entry back to T.
//
// Behavior highlights:
//   - Solution entries and null vectors are non-negative (reduced Hermite rows).
//   - For a consistent system len(Null) == len(mat[0]).
//   - Inputs are copied, never mutated.
//
// Errors:
//   - ErrEmptySystem, ErrShapeMismatch, ErrNonPositiveModulus for bad input.
//   - ErrNoSolution for an inconsistent system; the returned Result is
//     non-nil and carries the Null basis.
//   - ErrOverflow when an entry does not fit T.
//
// Complexity:
//   - Time O((n+m)³) big-integer operations bounded by (Π moduli)².
func Solve[T constraints.Signed](mat [][]T, rhs, moduli []T, opts ...Option) (*Result[T], error) {
	if err := ValidateSystem(mat, rhs, moduli); err != nil {
		return nil, congruenceErrorf(opSolve, err)
	}
	o := gatherOptions(opts...)
	m, n := len(mat), len(mat[0])
	if rhs == nil {
		rhs = make([]T, m)
	}

	a, err := matrix.FromRows(mat)
	if err != nil {
		return nil, congruenceErrorf(opSolve, err)
	}
	lat, d, err := BuildSolveLattice(a, toBigs(rhs), toBigs(moduli))
	if err != nil {
		return nil, congruenceErrorf(opSolve, err)
	}
	h, err := reduce(lat, d, o)
	if err != nil {
		return nil, congruenceErrorf(opSolve, err)
	}
	sol, null, err := ExtractSolution(h, m, n)
	if err != nil {
		return nil, congruenceErrorf(opSolve, err)
	}

	o.logger.WithFields(logrus.Fields{
		"rows":       m,
		"cols":       n,
		"det":        d.String(),
		"nulls":      len(null),
		"consistent": sol != nil,
	}).Debug("congruence: solved")

	res := &Result[T]{}
	if res.Null, err = narrowRows[T](null); err != nil {
		return nil, congruenceErrorf(opSolve, err)
	}
	if sol == nil {
		return res, congruenceErrorf(opSolve, ErrNoSolution)
	}
	if res.Solution, err = narrowVec[T](sol); err != nil {
		return nil, congruenceErrorf(opSolve, err)
	}

	return res, nil
}

// NullSpace returns a basis of {v : mat·v ≡ 0 (mod moduli)}. It uses the
// smaller (n+m)-square lattice, so it is cheaper than Solve with a zero rhs.
// The basis always has len(mat[0]) vectors.
//
// Errors: ErrEmptySystem, ErrShapeMismatch, ErrNonPositiveModulus, ErrOverflow.
func NullSpace[T constraints.Signed](mat [][]T, moduli []T, opts ...Option) ([][]T, error) {
	if err := ValidateSystem(mat, nil, moduli); err != nil {
		return nil, congruenceErrorf(opNullSpace, err)
	}
	o := gatherOptions(opts...)
	m, n := len(mat), len(mat[0])

	a, err := matrix.FromRows(mat)
	if err != nil {
		return nil, congruenceErrorf(opNullSpace, err)
	}
	lat, d, err := BuildNullLattice(a, toBigs(moduli))
	if err != nil {
		return nil, congruenceErrorf(opNullSpace, err)
	}
	h, err := reduce(lat, d, o)
	if err != nil {
		return nil, congruenceErrorf(opNullSpace, err)
	}
	null, err := ExtractNull(h, m, n)
	if err != nil {
		return nil, congruenceErrorf(opNullSpace, err)
	}

	o.logger.WithFields(logrus.Fields{
		"rows":  m,
		"cols":  n,
		"det":   d.String(),
		"nulls": len(null),
	}).Debug("congruence: null space")

	out, err := narrowRows[T](null)
	if err != nil {
		return nil, congruenceErrorf(opNullSpace, err)
	}

	return out, nil
}

// reduce runs ModularHNF, dumping both lattices when tracing.
func reduce(lat *matrix.Dense, d *big.Int, o Options) (*matrix.Dense, error) {
	if o.trace {
		o.logger.WithField("det", d.String()).Debugf("congruence: augmented lattice\n%s", lat)
	}
	h, err := hnf.ModularHNF(lat, d, o.hnfOptions()...)
	if err != nil {
		return nil, err
	}
	if o.trace {
		o.logger.Debugf("congruence: hermite form\n%s", h)
	}

	return h, nil
}
