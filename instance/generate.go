// SPDX-License-Identifier: MIT
// Package: maneuvergen/instance
//
// generate.go - the assembler.
//
// Sampling order on the single seeded source (fixed, part of the contract):
//  1. technology: ceil(n·rate) remote switches sampled without replacement;
//  2. durations: p[i] for i = 1..n (remote switches draw from [1,1]);
//  3. travel: every off-diagonal s[k][i][j], team → row → column;
//  4. relaxation (no randomness);
//  5. precedence on the same source. Mixed's per-stage choice uses
//     rng.Derive(seed, precedence.StreamStageChoice).

package instance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/maneuvergen/logger"
	"github.com/katalvlaran/maneuvergen/precedence"
	"github.com/katalvlaran/maneuvergen/rng"
	"github.com/katalvlaran/maneuvergen/travel"
)

// Digits is the number of decimals kept for real-valued durations.
const Digits = 5

type genConfig struct {
	log     logger.Logger
	workers int
}

// Option configures Generate.
type Option func(*genConfig)

// WithLogger sets the logger for generation progress. Panics on nil.
func WithLogger(l logger.Logger) Option {
	if l == nil {
		panic("instance: WithLogger(nil)")
	}
	return func(c *genConfig) { c.log = l }
}

// WithWorkers bounds the number of teams relaxed concurrently. Panics if w < 1.
func WithWorkers(w int) Option {
	if w < 1 {
		panic("instance: WithWorkers(w < 1)")
	}
	return func(c *genConfig) { c.workers = w }
}

// valueFunc draws from an inclusive range: integers in [ceil(lo), floor(hi)]
// when integerOnly, otherwise uniform reals rounded to Digits decimals.
func valueFunc(src *rng.Source, integerOnly bool) func(lo, hi float64) float64 {
	if integerOnly {
		return func(lo, hi float64) float64 {
			v, _ := src.IntRange(int(math.Ceil(lo)), int(math.Floor(hi))) // ranges validated
			return float64(v)
		}
	}
	return func(lo, hi float64) float64 {
		return src.RoundedUniform(lo, hi, Digits)
	}
}

// Generate builds one instance from cfg. cfg is validated first; on a
// configuration error nothing is sampled. ctx only bounds the relaxation.
func Generate(ctx context.Context, cfg Config, opts ...Option) (*Instance, error) {
	gc := genConfig{log: logger.Nop}
	for _, opt := range opts {
		opt(&gc)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	ctor, err := cfg.Precedence.Constructor()
	if err != nil {
		return nil, fmt.Errorf("Generate: %w: %w", err, ErrInvalidConfig)
	}

	start := time.Now()
	n, m := cfg.Switches, cfg.Teams
	src := rng.New(cfg.Seed)
	value := valueFunc(src, cfg.IntegerOnly)

	// 1) Technology.
	tech := make([]Technology, n+1)
	switches := make([]int, n)
	for i := range switches {
		tech[i+1] = Manual
		switches[i] = i + 1
	}
	remote, err := src.Sample(switches, cfg.RemoteCount())
	if err != nil {
		return nil, fmt.Errorf("Generate: remote switches: %w: %w", err, ErrInvalidConfig)
	}
	for _, i := range remote {
		tech[i] = Remote
	}

	// 2) Durations.
	p := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		if tech[i] == Remote {
			p[i] = value(1, 1)
		} else {
			p[i] = value(cfg.Maneuver.Min, cfg.Maneuver.Max)
		}
	}

	// 3) Travel times.
	s, err := travel.Sample(n, m, func() float64 { return value(cfg.Travel.Min, cfg.Travel.Max) })
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	// 4) Triangular inequality.
	if cfg.Triangular {
		var topts []travel.Option
		if gc.workers > 0 {
			topts = append(topts, travel.WithWorkers(gc.workers))
		}
		if err = travel.Relax(ctx, s, p, topts...); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}

	// 5) Precedence.
	g, err := precedence.Build(n, ctor,
		precedence.WithRand(src),
		precedence.WithChoiceRand(rng.Derive(cfg.Seed, precedence.StreamStageChoice)))
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	gc.log.Debugw("instance generated", map[string]any{
		"switches":   n,
		"teams":      m,
		"precedence": cfg.Precedence.String(),
		"arcs":       len(g.Arcs),
		"density":    g.Density,
		"seed":       cfg.Seed,
		"elapsed":    time.Since(start).String(),
	})

	return &Instance{n: n, m: m, p: p, tech: tech, s: s, arcs: g.Arcs, density: g.Density, real: !cfg.IntegerOnly}, nil
}
