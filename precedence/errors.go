// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// errors.go - sentinel errors for the precedence package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers use errors.Is.
//   - Implementations attach method context with %w at the detection site.
//   - Configuration classes are returned together with ErrInvalidConfig
//     (double %w) so callers can branch on the broad class or the exact cause.

package precedence

import "errors"

// ErrInvalidConfig is the broad class for any missing or contradictory
// builder parameter. It never appears alone from constructors: the exact
// cause is always wrapped alongside.
var ErrInvalidConfig = errors.New("precedence: invalid configuration")

// ErrTooFewSwitches indicates n < 1.
var ErrTooFewSwitches = errors.New("precedence: switch count too small")

// ErrTooFewStages indicates a stage count below 1.
var ErrTooFewStages = errors.New("precedence: stage count too small")

// ErrTooManyStages indicates more stages than switches: there are not enough
// positions to sample distinct close operations from.
var ErrTooManyStages = errors.New("precedence: stage count exceeds switch count")

// ErrMissingStages indicates a stage-based kind was requested without a stage count.
var ErrMissingStages = errors.New("precedence: stage count is required")

// ErrMissingDensity indicates the random kind was requested without a target density.
var ErrMissingDensity = errors.New("precedence: density is required")

// ErrInvalidDensity indicates a target density outside [0,1] (or NaN).
var ErrInvalidDensity = errors.New("precedence: density out of range")

// ErrUnknownKind indicates an unrecognized topology selector.
var ErrUnknownKind = errors.New("precedence: unknown kind")

// ErrNeedRandSource indicates a stochastic constructor ran without a source
// (WithSeed/WithRand, or WithChoiceRand for Mixed).
var ErrNeedRandSource = errors.New("precedence: rng is required")

// ErrCycle indicates an arc list that is not acyclic.
var ErrCycle = errors.New("precedence: cycle detected")

// ErrArcOutOfRange indicates an arc endpoint outside 1..n.
var ErrArcOutOfRange = errors.New("precedence: arc endpoint out of range")
