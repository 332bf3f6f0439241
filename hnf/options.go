// SPDX-License-Identifier: MIT

// Package hnf: functional configuration for ModularHNF.
//
// Design goals:
//   - Deterministic behavior: options only change what is reported, never
//     the arithmetic or the loop order.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package hnf

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option mutates Options; public APIs consume ...Option.
type Option func(*Options)

// Options holds the resolved configuration of one ModularHNF call.
type Options struct {
	logger logrus.FieldLogger // receives per-pivot Debug entries
}

// WithLogger routes per-pivot diagnostics (column, pivot, working modulus)
// to l at Debug level. Panics on a nil logger.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("hnf: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// discardLogger is the default sink: a logrus.Logger writing nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{logger: discardLogger()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
