// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// api.go - public entry points: Kind selector, Spec, Constructor and Build.
//
// Design contract:
//   - One orchestrator: Build(n, ctor, opts...). Resolves options, validates n,
//     runs the constructor once.
//   - Factories (Independent, Intree, Sequential, Mixed, RandomOrder) are
//     implemented in impl_*.go.
//   - Spec is the tagged variant used by configuration layers: one selector
//     field (Kind) plus the parameter that kind needs.

package precedence

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/maneuvergen/closure"
)

// Arc is a precedence pair (From, To): switch To cannot be maneuvered before
// switch From is maneuvered.
type Arc = closure.Arc

// Graph is the result of one construction.
type Graph struct {
	// N is the switch count; arcs reference switches 1..N.
	N int
	// Arcs lists the precedence pairs in production order. No pair repeats.
	Arcs []Arc
	// Density is the order strength of the transitive closure of Arcs.
	Density float64
}

// Kind selects a precedence topology.
type Kind string

// Supported topologies.
const (
	KindIndependent Kind = "independent"
	KindIntree      Kind = "intree"
	KindSequential  Kind = "sequential"
	KindMixed       Kind = "mixed"
	KindRandom      Kind = "random"
)

// Method names used as error prefixes.
const (
	methodBuild       = "Build"
	methodPartition   = "Partition"
	methodIndependent = "Independent"
	methodIntree      = "Intree"
	methodSequential  = "Sequential"
	methodMixed       = "Mixed"
	methodRandom      = "Random"
	methodSpec        = "Spec"
)

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindRandom, KindIndependent, KindIntree, KindSequential, KindMixed}
}

// ParseKind resolves a case-insensitive kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds() {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// StageBased reports whether k consumes a stage partition.
func (k Kind) StageBased() bool {
	switch k {
	case KindIndependent, KindIntree, KindSequential, KindMixed:
		return true
	}
	return false
}

// Constructor produces a precedence graph over n switches using the resolved
// configuration. Constructors validate their parameters before consuming any
// randomness and return sentinel errors; they never panic.
type Constructor func(n int, cfg builderConfig) (*Graph, error)

// Build resolves opts and runs ctor over n switches.
//
// Errors:
//   - ErrTooFewSwitches (with ErrInvalidConfig) when n < 1.
//   - ErrInvalidConfig for a nil constructor.
//   - Any constructor error, wrapped with "Build: ".
func Build(n int, ctor Constructor, opts ...Option) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w: %w", methodBuild, n, ErrTooFewSwitches, ErrInvalidConfig)
	}
	if ctor == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", methodBuild, ErrInvalidConfig)
	}
	cfg := newBuilderConfig(opts...)
	g, err := ctor(n, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuild, err)
	}
	return g, nil
}

// Spec is the configuration-level description of a precedence topology.
// Stages is required for stage-based kinds, Density for KindRandom; a nil
// pointer means "not supplied".
type Spec struct {
	Kind    Kind     `json:"kind"`
	Stages  *int     `json:"stages,omitempty"`
	Density *float64 `json:"density,omitempty"`
}

// RandomSpec is shorthand for Spec{Kind: KindRandom, Density: &density}.
func RandomSpec(density float64) Spec {
	return Spec{Kind: KindRandom, Density: &density}
}

// StagedSpec is shorthand for a stage-based Spec with k stages.
func StagedSpec(kind Kind, k int) Spec {
	return Spec{Kind: kind, Stages: &k}
}

// Validate checks s against a switch count without consuming randomness.
func (s Spec) Validate(n int) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d: %w: %w", methodSpec, n, ErrTooFewSwitches, ErrInvalidConfig)
	}
	switch {
	case s.Kind == KindRandom:
		if s.Density == nil {
			return fmt.Errorf("%s(%s): %w: %w", methodSpec, s.Kind, ErrMissingDensity, ErrInvalidConfig)
		}
		return validateDensity(methodSpec, *s.Density)
	case s.Kind.StageBased():
		if s.Stages == nil {
			return fmt.Errorf("%s(%s): %w: %w", methodSpec, s.Kind, ErrMissingStages, ErrInvalidConfig)
		}
		return validateStages(methodSpec, n, *s.Stages)
	default:
		return fmt.Errorf("%s: kind %q: %w: %w", methodSpec, s.Kind, ErrUnknownKind, ErrInvalidConfig)
	}
}

// Constructor dispatches on Kind and returns the matching factory.
func (s Spec) Constructor() (Constructor, error) {
	switch s.Kind {
	case KindRandom:
		if s.Density == nil {
			return nil, fmt.Errorf("%s(%s): %w: %w", methodSpec, s.Kind, ErrMissingDensity, ErrInvalidConfig)
		}
		return RandomOrder(*s.Density), nil
	case KindIndependent, KindIntree, KindSequential, KindMixed:
		if s.Stages == nil {
			return nil, fmt.Errorf("%s(%s): %w: %w", methodSpec, s.Kind, ErrMissingStages, ErrInvalidConfig)
		}
		k := *s.Stages
		switch s.Kind {
		case KindIndependent:
			return Independent(k), nil
		case KindIntree:
			return Intree(k), nil
		case KindSequential:
			return Sequential(k), nil
		default:
			return Mixed(k), nil
		}
	}
	return nil, fmt.Errorf("%s: kind %q: %w: %w", methodSpec, s.Kind, ErrUnknownKind, ErrInvalidConfig)
}

// String renders s compactly, e.g. "random(d=0.20)" or "intree(k=3)".
func (s Spec) String() string {
	switch {
	case s.Kind == KindRandom && s.Density != nil:
		return fmt.Sprintf("%s(d=%.2f)", s.Kind, *s.Density)
	case s.Stages != nil:
		return fmt.Sprintf("%s(k=%d)", s.Kind, *s.Stages)
	}
	return string(s.Kind)
}

func validateStages(method string, n, k int) error {
	if k < 1 {
		return fmt.Errorf("%s: k=%d: %w: %w", method, k, ErrTooFewStages, ErrInvalidConfig)
	}
	if k > n {
		return fmt.Errorf("%s: k=%d > n=%d: %w: %w", method, k, n, ErrTooManyStages, ErrInvalidConfig)
	}
	return nil
}

func validateDensity(method string, d float64) error {
	if math.IsNaN(d) || d < 0 || d > 1 {
		return fmt.Errorf("%s: density=%v not in [0,1]: %w: %w", method, d, ErrInvalidDensity, ErrInvalidConfig)
	}
	return nil
}
