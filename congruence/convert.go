// SPDX-License-Identifier: MIT

package congruence

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// toBigs copies a fixed-width vector into fresh *big.Int values.
func toBigs[T constraints.Signed](vs []T) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(int64(v))
	}

	return out
}

// narrow converts x back to T, failing with ErrOverflow when it does not fit.
// The round trip through int64 catches every signed width, including int.
func narrow[T constraints.Signed](x *big.Int) (T, error) {
	if !x.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, x)
	}
	w := x.Int64()
	v := T(w)
	if int64(v) != w {
		return 0, fmt.Errorf("%w: %s", ErrOverflow, x)
	}

	return v, nil
}

// narrowVec narrows every entry of xs; nil stays nil.
func narrowVec[T constraints.Signed](xs []*big.Int) ([]T, error) {
	if xs == nil {
		return nil, nil
	}
	out := make([]T, len(xs))
	var err error
	for i, x := range xs {
		if out[i], err = narrow[T](x); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// narrowRows narrows a list of vectors, keeping its order.
func narrowRows[T constraints.Signed](rows [][]*big.Int) ([][]T, error) {
	out := make([][]T, len(rows))
	var err error
	for i, r := range rows {
		if out[i], err = narrowVec[T](r); err != nil {
			return nil, err
		}
	}

	return out, nil
}
