// SPDX-License-Identifier: MIT

// Package congruence solves systems of linear Diophantine congruences with
// a separate modulus per equation.
//
// 🚀 What does it solve?
//
//	Given mat (m×n), rhs and moduli (length m), find x ∈ ℤⁿ with
//
//	    (mat·x)[i] ≡ rhs[i]  (mod moduli[i])   for every row i,
//
//	plus a basis of the null lattice {v : mat·v ≡ 0}. Every solution is x
//	plus an integer combination of the null vectors.
//
// ✨ How:
//   - The system is encoded as one square integer lattice (BuildSolveLattice /
//     BuildNullLattice): the transposed coefficients, a diagonal of moduli and
//     an identity "tag" block that records which combination produced a row.
//   - The lattice determinant is ±Π moduli, so hnf.ModularHNF reduces it with
//     bounded coefficients.
//   - ExtractSolution reads the particular solution and the null basis off the
//     Hermite form by row shape alone.
//
// ⚙️ Usage:
//
//	res, err := congruence.Solve(mat, rhs, moduli)
//	switch {
//	case errors.Is(err, congruence.ErrNoSolution):
//		// inconsistent; res.Null is still valid
//	case err != nil:
//		// bad input or a result entry that does not fit T
//	}
//	check, _ := congruence.MatMulMod(mat, res.Solution, moduli) // == rhs mod moduli
//
// The public API is generic over fixed-width signed integers; all internal
// arithmetic is exact (*big.Int) and results are narrowed back with an
// overflow check (ErrOverflow).
package congruence
