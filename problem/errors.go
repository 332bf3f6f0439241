// SPDX-License-Identifier: MIT

package problem

import "errors"

var (
	// ErrMissingField indicates a [[problem]] table without mat or moduli.
	ErrMissingField = errors.New("problem: missing required field")

	// ErrNoProblems indicates a file with no [[problem]] tables.
	ErrNoProblems = errors.New("problem: no problems defined")
)
