// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// options.go - functional options and the resolved builder configuration.
//
// Contract:
//   - Options mutate builderConfig before a constructor runs; later options
//     override earlier ones.
//   - Option constructors panic on nil arguments (programmer error);
//     constructors themselves never panic.

package precedence

import "github.com/katalvlaran/maneuvergen/rng"

// StreamStageChoice identifies the independent stream WithSeed derives for
// Mixed's per-stage topology choice.
const StreamStageChoice uint64 = 1

// builderConfig aggregates the knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// src drives stage sampling, permutations and arc draws.
	src *rng.Source
	// choice drives Mixed's per-stage topology choice only.
	choice *rng.Source
}

// Option customizes Build.
type Option func(*builderConfig)

// newBuilderConfig applies opts in order. Defaults: no sources.
func newBuilderConfig(opts ...Option) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithRand attaches the main randomness source. Panics on nil.
func WithRand(src *rng.Source) Option {
	if src == nil {
		panic("precedence: WithRand(nil)")
	}
	return func(c *builderConfig) { c.src = src }
}

// WithChoiceRand attaches the stream Mixed uses to pick each stage's
// topology. Panics on nil.
func WithChoiceRand(src *rng.Source) Option {
	if src == nil {
		panic("precedence: WithChoiceRand(nil)")
	}
	return func(c *builderConfig) { c.choice = src }
}

// WithSeed seeds the main stream with seed and the choice stream with
// rng.Derive(seed, StreamStageChoice).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.src = rng.New(seed)
		c.choice = rng.Derive(seed, StreamStageChoice)
	}
}
