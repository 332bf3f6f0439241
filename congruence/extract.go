// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/linsolvemod/matrix"
)

// ExtractSolution partitions the rows of h, the Hermite form of a solve
// lattice for an m×n system, by shape:
//
//   - the solution row has zeros in columns 0..m-1 and exactly 1 in column
//     m; its columns m+1..m+n are returned as solution;
//   - a null row has zeros in columns 0..m; its columns m+1..m+n are
//     appended to null in row order.
//
// solution is nil when no row qualifies, i.e. the system is inconsistent.
// h is only read, so repeated calls return equal results.
//
// Errors: matrix.ErrNilMatrix; ErrShapeMismatch unless h is (n+m+1)-square.
func ExtractSolution(h matrix.Matrix, m, n int) (solution []*big.Int, null [][]*big.Int, err error) {
	if err = checkHermiteShape(h, m, n, 1); err != nil {
		return nil, nil, congruenceErrorf(opExtractSoln, err)
	}

	var row []*big.Int
	for i := 0; i < h.Rows(); i++ {
		if row, err = readRow(h, i); err != nil {
			return nil, nil, congruenceErrorf(opExtractSoln, err)
		}
		if !zeroPrefix(row, m) {
			continue
		}
		switch {
		case row[m].Sign() == 0:
			null = append(null, row[m+1:])
		case solution == nil && row[m].IsInt64() && row[m].Int64() == 1:
			solution = row[m+1:]
		}
	}

	return solution, null, nil
}

// ExtractNull returns the null basis from h, the Hermite form of a null
// lattice for an m×n system: every row with zeros in columns 0..m-1
// contributes its columns m..m+n-1, in row order.
//
// Errors: matrix.ErrNilMatrix; ErrShapeMismatch unless h is (n+m)-square.
func ExtractNull(h matrix.Matrix, m, n int) ([][]*big.Int, error) {
	if err := checkHermiteShape(h, m, n, 0); err != nil {
		return nil, congruenceErrorf(opExtractNull, err)
	}

	var null [][]*big.Int
	for i := 0; i < h.Rows(); i++ {
		row, err := readRow(h, i)
		if err != nil {
			return nil, congruenceErrorf(opExtractNull, err)
		}
		if zeroPrefix(row, m) {
			null = append(null, row[m:])
		}
	}

	return null, nil
}

func checkHermiteShape(h matrix.Matrix, m, n, off int) error {
	if err := matrix.ValidateSquareNonNil(h); err != nil {
		return err
	}
	if m <= 0 || n <= 0 || h.Rows() != n+m+off {
		return fmt.Errorf("%w: %d-square lattice for a %dx%d system", ErrShapeMismatch, h.Rows(), m, n)
	}

	return nil
}

// readRow copies row i of h.
func readRow(h matrix.Matrix, i int) ([]*big.Int, error) {
	row := make([]*big.Int, h.Cols())
	var err error
	for j := range row {
		if row[j], err = h.At(i, j); err != nil {
			return nil, err
		}
	}

	return row, nil
}

// zeroPrefix reports whether row[0:k] is all zero.
func zeroPrefix(row []*big.Int, k int) bool {
	for _, v := range row[:k] {
		if v.Sign() != 0 {
			return false
		}
	}

	return true
}
