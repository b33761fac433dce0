// SPDX-License-Identifier: MIT
// Package: maneuvergen/instance
//
// instance.go - the immutable Instance record and its accessors.
//
// Accessors that expose slices or matrices return copies, so an Instance
// never changes after construction.

package instance

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/maneuvergen/precedence"
	"github.com/katalvlaran/maneuvergen/travel"
)

// Technology is the way a switch is maneuvered.
type Technology byte

const (
	// Manual switches are operated on site; their duration is sampled.
	Manual Technology = 'M'
	// Remote switches are operated remotely; their duration is 1.
	Remote Technology = 'R'
)

func (t Technology) String() string { return string(rune(t)) }

// ParseTechnology maps "M" and "R" to their Technology.
func ParseTechnology(s string) (Technology, error) {
	switch s {
	case "M":
		return Manual, nil
	case "R":
		return Remote, nil
	}
	return 0, fmt.Errorf("technology %q: %w", s, ErrMalformed)
}

// Instance is one generated problem.
type Instance struct {
	n, m    int
	p       []float64        // len n+1, p[0] = 0
	tech    []Technology     // len n+1, tech[0] unused
	s       []*travel.Matrix // len m
	arcs    []precedence.Arc // production order
	density float64
	real    bool // durations are real-valued, not integer-only
}

// N returns the switch count.
func (in *Instance) N() int { return in.n }

// M returns the team count.
func (in *Instance) M() int { return in.m }

// IntegerOnly reports whether durations and travel times are integers.
func (in *Instance) IntegerOnly() bool { return !in.real }

// Density returns the order strength of the precedence relation.
func (in *Instance) Density() float64 { return in.density }

// Duration returns the maneuver duration of switch i (0 for i outside 1..n).
func (in *Instance) Duration(i int) float64 {
	if i < 1 || i > in.n {
		return 0
	}
	return in.p[i]
}

// Durations returns p[0..n] with p[0] = 0.
func (in *Instance) Durations() []float64 {
	out := make([]float64, len(in.p))
	copy(out, in.p)
	return out
}

// Technology returns the technology of switch i (0 for i outside 1..n).
func (in *Instance) Technology(i int) Technology {
	if i < 1 || i > in.n {
		return 0
	}
	return in.tech[i]
}

// RemoteCount returns the number of remote switches.
func (in *Instance) RemoteCount() int {
	c := 0
	for i := 1; i <= in.n; i++ {
		if in.tech[i] == Remote {
			c++
		}
	}
	return c
}

// Travel returns a copy of team k's travel matrix.
func (in *Instance) Travel(k int) (*travel.Matrix, error) {
	if k < 0 || k >= in.m {
		return nil, fmt.Errorf("Travel: team %d of %d: %w", k, in.m, travel.ErrOutOfRange)
	}
	return in.s[k].Clone(), nil
}

// Precedence returns the arcs in production order.
func (in *Instance) Precedence() []precedence.Arc {
	out := make([]precedence.Arc, len(in.arcs))
	copy(out, in.arcs)
	return out
}

// Predecessors returns, per switch, its direct predecessors in arc order.
func (in *Instance) Predecessors() [][]int {
	preds, _ := precedence.Predecessors(in.n, in.arcs) // arcs checked at construction
	return preds
}

// WriteDOT writes the precedence graph in DOT. Remote switches are labelled
// "i (R)".
func (in *Instance) WriteDOT(w io.Writer, name string) error {
	return precedence.WriteDOT(w, name, in.n, in.arcs, func(i int) string {
		if in.tech[i] == Remote {
			return strconv.Itoa(i) + " (R)"
		}
		return ""
	})
}
