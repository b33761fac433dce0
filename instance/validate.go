// SPDX-License-Identifier: MIT
// Package: maneuvergen/instance
//
// validate.go - structural invariant checks on a built or parsed instance.

package instance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/maneuvergen/closure"
	"github.com/katalvlaran/maneuvergen/precedence"
	"github.com/katalvlaran/maneuvergen/travel"
)

// DensityTolerance is the slack allowed between a stored density and the
// recomputed one. The text format keeps three decimals.
const DensityTolerance = 0.0005

// Validate re-checks the invariants every instance must satisfy:
// technologies are M or R, remote switches last exactly 1, durations are
// finite and non-negative, travel diagonals are 0, precedence arcs are in
// range, unique and acyclic, and the stored density matches the closure
// within DensityTolerance+eps. Triangularity is checked separately by
// CheckTriangular since it is optional at generation.
func (in *Instance) Validate(eps float64) error {
	var i int
	for i = 1; i <= in.n; i++ {
		switch in.tech[i] {
		case Manual, Remote:
		default:
			return fmt.Errorf("Validate: switch %d: technology %v: %w", i, in.tech[i], ErrInvariant)
		}
		if math.IsNaN(in.p[i]) || math.IsInf(in.p[i], 0) || in.p[i] < 0 {
			return fmt.Errorf("Validate: switch %d: duration %v: %w", i, in.p[i], ErrInvariant)
		}
		if in.tech[i] == Remote && in.p[i] != 1 {
			return fmt.Errorf("Validate: remote switch %d has duration %v: %w", i, in.p[i], ErrInvariant)
		}
	}

	for k, m := range in.s {
		for i = 0; i <= in.n; i++ {
			if v, _ := m.At(i, i); v != 0 {
				return fmt.Errorf("Validate: team %d: s[%d][%d]=%v: %w: %w", k, i, i, v, travel.ErrNonZeroDiagonal, ErrInvariant)
			}
		}
	}

	seen := make(map[precedence.Arc]struct{}, len(in.arcs))
	for _, a := range in.arcs {
		if _, dup := seen[a]; dup {
			return fmt.Errorf("Validate: duplicate arc (%d,%d): %w", a.From, a.To, ErrInvariant)
		}
		seen[a] = struct{}{}
	}
	if _, err := precedence.TopologicalOrder(in.n, in.arcs); err != nil {
		return fmt.Errorf("Validate: %w: %w", err, ErrInvariant)
	}

	if d := closure.Density(in.n, in.arcs); math.Abs(d-in.density) > DensityTolerance+eps {
		return fmt.Errorf("Validate: density %v, closure gives %v: %w", in.density, d, ErrInvariant)
	}
	return nil
}

// CheckTriangular verifies s[k][i][j] ≤ s[k][i][l] + p[l] + s[k][l][j]
// (p[0] = 0) for every team within eps.
func (in *Instance) CheckTriangular(eps float64) error {
	for k, m := range in.s {
		if err := travel.Check(m, in.p, eps); err != nil {
			return fmt.Errorf("CheckTriangular: team %d: %w", k, err)
		}
	}
	return nil
}
