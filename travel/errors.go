// SPDX-License-Identifier: MIT
// Package: maneuvergen/travel
//
// errors.go - sentinel errors. Callers branch with errors.Is; context is added
// with fmt.Errorf("...: %w", Err...).

package travel

import "errors"

var (
	// ErrInvalidSize is returned for a negative switch count or team count.
	ErrInvalidSize = errors.New("travel: invalid size")

	// ErrOutOfRange indicates a location index outside 0..n.
	ErrOutOfRange = errors.New("travel: location out of range")

	// ErrDimensionMismatch indicates a durations slice or matrix list whose
	// length does not match the matrix order.
	ErrDimensionMismatch = errors.New("travel: dimension mismatch")

	// ErrNonZeroDiagonal signals s[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("travel: diagonal not zero")

	// ErrNaNInf signals a NaN or infinite entry or duration.
	ErrNaNInf = errors.New("travel: NaN or Inf encountered")

	// ErrTriangle signals a violated triangular inequality.
	ErrTriangle = errors.New("travel: triangular inequality violated")

	// ErrNilDraw is returned when Sample gets no value function.
	ErrNilDraw = errors.New("travel: nil draw function")
)
