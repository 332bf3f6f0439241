// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linsolvemod/congruence"
	"github.com/katalvlaran/linsolvemod/problem"
)

// run solves every problem in s, writing reports to w. A failing problem is
// logged and skipped; run fails if any problem failed.
func run(w io.Writer, s *problem.Settings, log logrus.FieldLogger, trace bool) error {
	opts := []congruence.Option{congruence.WithLogger(log)}
	if trace {
		opts = append(opts, congruence.WithTrace())
	}

	failed := 0
	for _, p := range s.Problems {
		plog := log.WithField("problem", p.Name)
		if err := report(w, p, opts); err != nil {
			plog.WithError(err).Error("failed")
			failed++
			continue
		}
		plog.Info("solved")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d problems failed", failed, len(s.Problems))
	}

	return nil
}

// report solves one problem and prints the result and its checks.
func report(w io.Writer, p problem.Problem, opts []congruence.Option) error {
	fmt.Fprintf(w, "== %s\n", p.Name)

	if p.Homogeneous() {
		null, err := congruence.NullSpace(p.Mat, p.Moduli, opts...)
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintf(w, "nulls:\n%s\n", formatRows(null))

		return checkNulls(w, p, null)
	}

	res, err := congruence.Solve(p.Mat, p.RHS, p.Moduli, opts...)
	switch {
	case errors.Is(err, congruence.ErrNoSolution):
		fmt.Fprintf(w, "solution:\nnone\nnulls:\n%s\n", formatRows(res.Null))

		return checkNulls(w, p, res.Null)
	case err != nil:
		return errors.WithStack(err)
	}

	fmt.Fprintf(w, "solution:\n%s\n", formatVec(res.Solution))
	fmt.Fprintf(w, "nulls:\n%s\n", formatRows(res.Null))

	check, err := congruence.MatMulMod(p.Mat, res.Solution, p.Moduli)
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Fprintf(w, "check the solution (should equal rhs):\n%s\n", formatVec(check))

	return checkNulls(w, p, res.Null)
}

func checkNulls(w io.Writer, p problem.Problem, null [][]int64) error {
	fmt.Fprintln(w, "check the nulls (should equal zero):")
	for _, v := range null {
		check, err := congruence.MatMulMod(p.Mat, v, p.Moduli)
		if err != nil {
			return errors.WithStack(err)
		}
		fmt.Fprintln(w, formatVec(check))
	}

	return nil
}

// formatVec prints v as [a,b,c].
func formatVec(v []int64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatInt(x, 10)
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// formatRows prints one vector per line.
func formatRows(rows [][]int64) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = formatVec(r)
	}

	return strings.Join(lines, "\n")
}
