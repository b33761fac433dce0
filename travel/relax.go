// SPDX-License-Identifier: MIT
// Package: maneuvergen/travel
//
// relax.go - node-weighted triangular relaxation and its checker.
//
// Loop order is fixed (l → i → j) with l the intermediate location. With
// non-negative entries and durations, s[i][l] and s[l][j] cannot change while
// l is the intermediate, so both are read once per row.
//
// Complexity: O(m·n³) time, O(1) extra space per matrix.

package travel

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

const (
	opRelax = "Relax"
	opCheck = "Check"
)

// Relax lowers every s[k][i][j] to min over l of s[k][i][l] + d(l) + s[k][l][j]
// in place, where d = durations, d(0) is taken as 0, and len(durations) must
// be n+1. Matrices are relaxed concurrently, at most WithWorkers at a time.
// A cancelled ctx stops work between intermediates and returns ctx.Err().
func Relax(ctx context.Context, mats []*Matrix, durations []float64, opts ...Option) error {
	for k, m := range mats {
		if m == nil || len(durations) != m.n+1 {
			return fmt.Errorf("%s: team %d: %d durations: %w", opRelax, k, len(durations), ErrDimensionMismatch)
		}
	}
	cfg := newRelaxConfig(opts...)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for k := range mats {
		m := mats[k]
		g.Go(func() error {
			if err := relaxInPlace(gctx, m, durations); err != nil {
				return fmt.Errorf("%s: team %d: %w", opRelax, k, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// relaxInPlace runs one pass over a single matrix.
func relaxInPlace(ctx context.Context, m *Matrix, durations []float64) error {
	o := m.n + 1
	data := m.data

	var (
		l, i, j   int
		baseL     int
		baseI     int
		via, cand float64
		durL      float64
	)
	for l = 0; l < o; l++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		durL = 0
		if l > 0 {
			durL = durations[l]
		}
		baseL = l * o
		for i = 0; i < o; i++ {
			baseI = i * o
			via = data[baseI+l] + durL
			for j = 0; j < o; j++ {
				cand = via + data[baseL+j]
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
	return nil
}

// Check verifies m against durations: finite entries, zero diagonal and the
// node-weighted inequality within eps. The first violation found in
// (l, i, j) order is reported.
func Check(m *Matrix, durations []float64, eps float64) error {
	if m == nil || len(durations) != m.n+1 {
		return fmt.Errorf("%s: %d durations: %w", opCheck, len(durations), ErrDimensionMismatch)
	}
	o := m.n + 1
	data := m.data
	var i, j, l int
	for i = 0; i < o; i++ {
		if i > 0 && (math.IsNaN(durations[i]) || math.IsInf(durations[i], 0)) {
			return fmt.Errorf("%s: d(%d): %w", opCheck, i, ErrNaNInf)
		}
		for j = 0; j < o; j++ {
			v := data[i*o+j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%s: s[%d][%d]: %w", opCheck, i, j, ErrNaNInf)
			}
		}
		if data[i*o+i] != 0 {
			return fmt.Errorf("%s: s[%d][%d]=%v: %w", opCheck, i, i, data[i*o+i], ErrNonZeroDiagonal)
		}
	}

	var durL, bound float64
	for l = 0; l < o; l++ {
		durL = 0
		if l > 0 {
			durL = durations[l]
		}
		for i = 0; i < o; i++ {
			for j = 0; j < o; j++ {
				bound = data[i*o+l] + durL + data[l*o+j]
				if data[i*o+j] > bound+eps {
					return fmt.Errorf("%s: s[%d][%d]=%v > s[%d][%d]+d(%d)+s[%d][%d]=%v: %w",
						opCheck, i, j, data[i*o+j], i, l, l, l, j, bound, ErrTriangle)
				}
			}
		}
	}
	return nil
}
