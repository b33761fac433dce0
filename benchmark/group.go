// SPDX-License-Identifier: MIT
// Package: maneuvergen/benchmark
//
// group.go - benchmark group definition, tag mapping and instance naming.

package benchmark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/maneuvergen/instance"
	"github.com/katalvlaran/maneuvergen/precedence"
)

// Precedence family tags used in instance names.
const (
	TagRandom      = "R"
	TagMixed       = "M"
	TagIndependent = "I"
	TagIntree      = "T"
	TagSequential  = "S"
)

var (
	// ErrInvalidGroup is the class of every group definition error.
	ErrInvalidGroup = errors.New("benchmark: invalid group")

	// ErrUnknownTag indicates a precedence family tag outside R, M, I, T, S.
	ErrUnknownTag = errors.New("benchmark: unknown precedence tag")
)

var tagKinds = map[string]precedence.Kind{
	TagRandom:      precedence.KindRandom,
	TagMixed:       precedence.KindMixed,
	TagIndependent: precedence.KindIndependent,
	TagIntree:      precedence.KindIntree,
	TagSequential:  precedence.KindSequential,
}

// KindForTag maps a family tag to its precedence kind.
func KindForTag(tag string) (precedence.Kind, error) {
	k, ok := tagKinds[strings.ToUpper(tag)]
	if !ok {
		return "", fmt.Errorf("tag %q: %w", tag, ErrUnknownTag)
	}
	return k, nil
}

// SpecForTag builds the precedence spec of one family member. For R the
// parameter is a density in percent, otherwise a stage count.
func SpecForTag(tag string, param int) (precedence.Spec, error) {
	kind, err := KindForTag(tag)
	if err != nil {
		return precedence.Spec{}, err
	}
	if kind == precedence.KindRandom {
		return precedence.RandomSpec(float64(param) / 100.0), nil
	}
	return precedence.StagedSpec(kind, param), nil
}

// Family is one precedence tag with the parameters to sweep.
type Family struct {
	Tag    string `json:"tag"`
	Params []int  `json:"params"`
}

// Set is a cross product of switch counts, team counts and families.
type Set struct {
	Switches   []int    `json:"switches"`
	Teams      []int    `json:"teams"`
	Precedence []Family `json:"precedence"`
}

// Group is a named batch of instances. Every instance is generated with
// triangular travel times and integer values.
type Group struct {
	Name       string         `json:"name"`
	Prefix     string         `json:"prefix"`
	Suffix     string         `json:"suffix"`
	Seeds      []int64        `json:"seeds"`
	Maneuver   instance.Range `json:"maneuver"`
	Travel     instance.Range `json:"travel"`
	RemoteRate float64        `json:"remote_rate"`
	Sets       []Set          `json:"sets"`
}

// DefaultGroup returns the BENCHMARK group: a small and a medium/large set,
// 576 instances in all.
func DefaultGroup() Group {
	return Group{
		Name:       "BENCHMARK",
		Prefix:     "ORCS",
		Seeds:      []int64{1, 3, 6},
		Maneuver:   instance.Range{Min: 1, Max: 4},
		Travel:     instance.Range{Min: 7, Max: 14},
		RemoteRate: 0.10,
		Sets:       defaultSets(),
	}
}

func defaultSets() []Set {
	return []Set{
		{
			Switches: []int{6, 8, 10, 12},
			Teams:    []int{2, 3, 4},
			Precedence: []Family{
				{Tag: TagSequential, Params: []int{2, 3}},
				{Tag: TagIntree, Params: []int{2, 3}},
				{Tag: TagIndependent, Params: []int{2, 3}},
				{Tag: TagRandom, Params: []int{10, 20}},
			},
		},
		{
			Switches: []int{50, 75, 100, 125},
			Teams:    []int{10, 15, 20},
			Precedence: []Family{
				{Tag: TagSequential, Params: []int{10, 20}},
				{Tag: TagIntree, Params: []int{10, 20}},
				{Tag: TagIndependent, Params: []int{10, 20}},
				{Tag: TagRandom, Params: []int{10, 20}},
			},
		},
	}
}

// SetDefaults fills an empty name, seeds, ranges and sets from DefaultGroup.
// Prefix, suffix and remote rate are kept: empty and zero are valid values.
func (g *Group) SetDefaults() {
	d := DefaultGroup()
	if g.Name == "" {
		g.Name = d.Name
	}
	if len(g.Seeds) == 0 {
		g.Seeds = d.Seeds
	}
	if g.Maneuver.IsZero() {
		g.Maneuver = d.Maneuver
	}
	if g.Travel.IsZero() {
		g.Travel = d.Travel
	}
	if len(g.Sets) == 0 {
		g.Sets = d.Sets
	}
}

// InstanceName builds "[prefix-]NNN-MM-T-PP-SS[-suffix]" where SS is the
// 1-based seed position.
func InstanceName(prefix, suffix string, n, m int, tag string, param, seedIdx int) string {
	var sb strings.Builder
	if prefix != "" {
		sb.WriteString(prefix)
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, "%03d-%02d-%s-%02d-%02d", n, m, tag, param, seedIdx+1)
	if suffix != "" {
		sb.WriteByte('-')
		sb.WriteString(suffix)
	}
	return sb.String()
}

// Job is one instance of a group.
type Job struct {
	Name   string
	Tag    string
	Config instance.Config
}

// Jobs expands g in set → switches → teams → family → parameter → seed
// order. Every job config is validated, so a bad group fails before any file
// is written.
func (g Group) Jobs() ([]Job, error) {
	if len(g.Seeds) == 0 {
		return nil, fmt.Errorf("group %q: no seeds: %w", g.Name, ErrInvalidGroup)
	}
	if len(g.Sets) == 0 {
		return nil, fmt.Errorf("group %q: no sets: %w", g.Name, ErrInvalidGroup)
	}

	var jobs []Job
	for si, set := range g.Sets {
		if len(set.Switches) == 0 || len(set.Teams) == 0 || len(set.Precedence) == 0 {
			return nil, fmt.Errorf("group %q set %d: empty dimension: %w", g.Name, si, ErrInvalidGroup)
		}
		for _, n := range set.Switches {
			for _, m := range set.Teams {
				for _, fam := range set.Precedence {
					tag := strings.ToUpper(fam.Tag)
					for _, param := range fam.Params {
						spec, err := SpecForTag(tag, param)
						if err != nil {
							return nil, fmt.Errorf("group %q set %d: %w: %w", g.Name, si, err, ErrInvalidGroup)
						}
						for seedIdx, seed := range g.Seeds {
							cfg := instance.Config{
								Switches:    n,
								Teams:       m,
								Maneuver:    g.Maneuver,
								Travel:      g.Travel,
								RemoteRate:  g.RemoteRate,
								Precedence:  spec,
								Triangular:  true,
								IntegerOnly: true,
								Seed:        seed,
							}
							name := InstanceName(g.Prefix, g.Suffix, n, m, tag, param, seedIdx)
							if err = cfg.Validate(); err != nil {
								return nil, fmt.Errorf("group %q: %s: %w: %w", g.Name, name, err, ErrInvalidGroup)
							}
							jobs = append(jobs, Job{Name: name, Tag: tag, Config: cfg})
						}
					}
				}
			}
		}
	}
	return jobs, nil
}
