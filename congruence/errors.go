// SPDX-License-Identifier: MIT

// Package congruence: sentinel errors. Every exported function wraps one of
// these with an operation tag; match them with errors.Is.
package congruence

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySystem indicates a matrix with no rows or no columns.
	ErrEmptySystem = errors.New("congruence: empty system")

	// ErrShapeMismatch indicates ragged rows, or rhs/moduli/vector lengths
	// that do not match the matrix.
	ErrShapeMismatch = errors.New("congruence: shape mismatch")

	// ErrNonPositiveModulus indicates a modulus <= 0.
	ErrNonPositiveModulus = errors.New("congruence: modulus must be > 0")

	// ErrNoSolution indicates an inconsistent system. Solve returns it
	// together with a Result whose Null basis is still populated.
	ErrNoSolution = errors.New("congruence: system has no solution")

	// ErrOverflow indicates a result entry that does not fit the caller's
	// integer type.
	ErrOverflow = errors.New("congruence: result does not fit integer type")
)

// Operation tags used in wrapped errors.
const (
	opSolve       = "Solve"
	opNullSpace   = "NullSpace"
	opValidate    = "ValidateSystem"
	opMatMulMod   = "MatMulMod"
	opCombine     = "Combine"
	opBuildSolve  = "BuildSolveLattice"
	opBuildNull   = "BuildNullLattice"
	opExtractSoln = "ExtractSolution"
	opExtractNull = "ExtractNull"
)

// congruenceErrorf wraps err with an operation tag, preserving it for errors.Is.
func congruenceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
