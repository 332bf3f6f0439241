// SPDX-License-Identifier: MIT

// Package congruence: functional configuration for Solve and NullSpace.
//
// Options only change what is reported, never the arithmetic: the same
// input always yields the same Result.
package congruence

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/linsolvemod/hnf"
)

// Option mutates Options; public APIs consume ...Option.
type Option func(*Options)

// Options holds the resolved configuration of one solver call.
type Options struct {
	logger logrus.FieldLogger // receives Debug summaries (default: discard)
	trace  bool               // dump lattices and per-pivot HNF entries
}

// WithLogger sends solver diagnostics to l. Summaries are logged at Debug;
// nothing is logged above Debug. Panics on a nil logger.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("congruence: WithLogger(nil)")
	}

	return func(o *Options) { o.logger = l }
}

// WithTrace additionally dumps the augmented lattice, its Hermite form and
// every HNF pivot to the logger at Debug level.
func WithTrace() Option {
	return func(o *Options) { o.trace = true }
}

// hnfOptions forwards the logger to ModularHNF when tracing.
func (o Options) hnfOptions() []hnf.Option {
	if !o.trace {
		return nil
	}

	return []hnf.Option{hnf.WithLogger(o.logger)}
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	o := Options{logger: discard}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
