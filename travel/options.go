// SPDX-License-Identifier: MIT
// Package: maneuvergen/travel
//
// options.go - functional options for Relax.

package travel

import "runtime"

// relaxConfig is the resolved option set of one Relax call.
type relaxConfig struct {
	workers int
}

// Option configures Relax.
type Option func(*relaxConfig)

func newRelaxConfig(opts ...Option) relaxConfig {
	cfg := relaxConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers bounds the number of matrices relaxed at the same time.
// Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("travel: WithWorkers(w < 1)")
	}
	return func(c *relaxConfig) { c.workers = w }
}
