// SPDX-License-Identifier: MIT

package hnf

import (
	"errors"
	"fmt"
)

// ErrBadDeterminant indicates a nil or non-positive determinant bound D.
var ErrBadDeterminant = errors.New("hnf: determinant bound must be > 0")

// opModularHNF tags errors returned by ModularHNF.
const opModularHNF = "ModularHNF"

// hnfErrorf wraps err with an operation tag, preserving it for errors.Is.
func hnfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
