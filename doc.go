// Package linsolvemod solves systems of linear Diophantine congruences,
// one modulus per equation, exactly.
//
// 🚀 What is linsolvemod?
//
//	Given an integer matrix mat (m×n), a right-hand side rhs and moduli,
//	it finds x with (mat·x)[i] ≡ rhs[i] (mod moduli[i]) for every row,
//	plus a basis of every v with mat·v ≡ 0. All solutions are x plus an
//	integer combination of that basis.
//
//	  • Exact integers end to end – *big.Int internals, checked narrowing
//	  • Modular Hermite Normal Form – coefficient growth bounded by Π moduli
//	  • Generic API – any fixed-width signed integer type
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/     - exact integer Dense matrix, validators, MatVecMod
//	hnf/        - ExtendedGCD, RowUnimodularUpdate, ModularHNF
//	congruence/ - augmented lattices, Solve, NullSpace, MatMulMod
//	problem/    - TOML problem files for drivers
//
// Quick example:
//
//	2x ≡ 1 (mod 3)   →   x = 2 + 3k
//
//	res, _ := congruence.Solve([][]int{{2}}, []int{1}, []int{3})
//	// res.Solution == [2], res.Null == [[3]]
//
// The cmd/linsolvemod driver reads [[problem]] tables from a TOML file and
// prints every solution, its null basis and both checks.
//
//	go install github.com/katalvlaran/linsolvemod/cmd/linsolvemod@latest
package linsolvemod
