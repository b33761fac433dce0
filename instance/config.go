// SPDX-License-Identifier: MIT
// Package: maneuvergen/instance
//
// config.go - generation parameters, defaults and validation.

package instance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/maneuvergen/precedence"
)

// Defaults applied by DefaultConfig and SetDefaults.
const (
	DefaultRemoteRate  = 0.10
	DefaultManeuverMin = 1
	DefaultManeuverMax = 3
	DefaultTravelMin   = 5
	DefaultTravelMax   = 10
)

// Range is an inclusive [Min, Max] interval of durations.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// IsZero reports whether both bounds are zero (the unset value).
func (r Range) IsZero() bool { return r.Min == 0 && r.Max == 0 }

func (r Range) String() string { return fmt.Sprintf("[%v,%v]", r.Min, r.Max) }

// validate checks r as a sampling range named name.
func (r Range) validate(name string, integerOnly bool) error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%s %v: not finite: %w: %w", name, r, ErrInvalidRange, ErrInvalidConfig)
	}
	if r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("%s %v: need 0 ≤ min ≤ max: %w: %w", name, r, ErrInvalidRange, ErrInvalidConfig)
	}
	if integerOnly && math.Ceil(r.Min) > math.Floor(r.Max) {
		return fmt.Errorf("%s %v: no integer inside: %w: %w", name, r, ErrInvalidRange, ErrInvalidConfig)
	}
	return nil
}

// Config holds every input of one instance generation.
type Config struct {
	// Switches is n, the number of switches (≥ 1).
	Switches int `json:"switches"`
	// Teams is m, the number of teams (≥ 1).
	Teams int `json:"teams"`
	// Maneuver bounds the duration of manual switches.
	Maneuver Range `json:"maneuver"`
	// Travel bounds the raw travel times.
	Travel Range `json:"travel"`
	// RemoteRate is the proportion of remote switches; ceil(n·RemoteRate) are remote.
	RemoteRate float64 `json:"remote_rate"`
	// Precedence selects the precedence topology and its parameter.
	Precedence precedence.Spec `json:"precedence"`
	// Triangular enables travel-time relaxation.
	Triangular bool `json:"triangular"`
	// IntegerOnly restricts durations to integers.
	IntegerOnly bool `json:"integer_only"`
	// Seed initializes the random source; it is used verbatim.
	Seed int64 `json:"seed"`
}

// DefaultConfig returns a config for n switches and m teams with the default
// ranges and remote rate and the random topology. Precedence.Density must
// still be set.
func DefaultConfig(n, m int) Config {
	cfg := Config{Switches: n, Teams: m, RemoteRate: DefaultRemoteRate}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills unset ranges and an empty precedence kind. RemoteRate is
// left alone: zero is a meaningful value.
func (c *Config) SetDefaults() {
	if c.Maneuver.IsZero() {
		c.Maneuver = Range{Min: DefaultManeuverMin, Max: DefaultManeuverMax}
	}
	if c.Travel.IsZero() {
		c.Travel = Range{Min: DefaultTravelMin, Max: DefaultTravelMax}
	}
	if c.Precedence.Kind == "" {
		c.Precedence.Kind = precedence.KindRandom
	}
}

// Validate checks c completely. Every error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if c.Switches < 1 {
		return fmt.Errorf("switches=%d: %w: %w", c.Switches, ErrTooFewSwitches, ErrInvalidConfig)
	}
	if c.Teams < 1 {
		return fmt.Errorf("teams=%d: %w: %w", c.Teams, ErrTooFewTeams, ErrInvalidConfig)
	}
	if math.IsNaN(c.RemoteRate) || c.RemoteRate < 0 || c.RemoteRate > 1 {
		return fmt.Errorf("remote rate=%v: %w: %w", c.RemoteRate, ErrInvalidRate, ErrInvalidConfig)
	}
	if err := c.Maneuver.validate("maneuver", c.IntegerOnly); err != nil {
		return err
	}
	if err := c.Travel.validate("travel", c.IntegerOnly); err != nil {
		return err
	}
	if err := c.Precedence.Validate(c.Switches); err != nil {
		return fmt.Errorf("precedence: %w: %w", err, ErrInvalidConfig)
	}
	return nil
}

// RemoteCount is the number of remote switches the config produces.
func (c Config) RemoteCount() int {
	return int(math.Ceil(float64(c.Switches) * c.RemoteRate))
}
