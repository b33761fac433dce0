// SPDX-License-Identifier: MIT
// Package: maneuvergen/instance
//
// errors.go - sentinel errors for configuration, parsing and validation.

package instance

import "errors"

var (
	// ErrInvalidConfig is the class of every configuration error. Generation
	// fails with it before consuming any randomness.
	ErrInvalidConfig = errors.New("instance: invalid configuration")

	// ErrTooFewSwitches indicates Switches < 1.
	ErrTooFewSwitches = errors.New("instance: need at least one switch")

	// ErrTooFewTeams indicates Teams < 1.
	ErrTooFewTeams = errors.New("instance: need at least one team")

	// ErrInvalidRange indicates a duration range that is empty, negative or
	// not finite, or has no integer when integer-only values are requested.
	ErrInvalidRange = errors.New("instance: invalid range")

	// ErrInvalidRate indicates a remote-switch proportion outside [0,1].
	ErrInvalidRate = errors.New("instance: remote rate not in [0,1]")

	// ErrMalformed is returned by Read for input that does not follow the
	// instance text format.
	ErrMalformed = errors.New("instance: malformed input")

	// ErrInvariant is returned by Validate for an instance that breaks a
	// structural invariant.
	ErrInvariant = errors.New("instance: invariant violated")
)
