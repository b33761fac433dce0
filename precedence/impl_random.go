// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// impl_random.go - RandomOrder(density) constructor.
//
// Model:
//   - Shuffle 1..n into a permutation π. Candidates are all pairs (π[a], π[b])
//     with a < b, so any subset is acyclic.
//   - Repeatedly draw a candidate uniformly, append it, relate it in the
//     closure and drop every candidate the closure now implies.
//   - Stop when no candidate is left or the order strength reaches the target.
//     The last arc is the only one that can push the density past the target.
//
// Contract:
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   - Requires the main source (else ErrNeedRandSource).
//   - Graph.Density is the builder's own running value; it equals
//     closure.Density(n, Arcs) exactly because both use closure.Relation.
//
// Complexity: O(n²) candidates; each step O(n + |pred|·|succ|).
// The loop is sequential by construction: each draw depends on the closure
// left by the previous ones.

package precedence

import (
	"fmt"

	"github.com/katalvlaran/maneuvergen/closure"
)

// RandomOrder returns a Constructor that grows a random acyclic relation up to
// the given order strength.
func RandomOrder(density float64) Constructor {
	return func(n int, cfg builderConfig) (*Graph, error) {
		if err := validateDensity(methodRandom, density); err != nil {
			return nil, err
		}
		if cfg.src == nil {
			return nil, fmt.Errorf("%s: %w", methodRandom, ErrNeedRandSource)
		}

		// 1) Random permutation of the switches.
		nodes := make([]int, n)
		for i := range nodes {
			nodes[i] = i + 1
		}
		cfg.src.Shuffle(nodes)

		// 2) Candidate pool in permutation order.
		pool := newArcPool(n * (n - 1) / 2)
		var a, b int
		for a = 0; a < n; a++ {
			for b = a + 1; b < n; b++ {
				pool.add(Arc{From: nodes[a], To: nodes[b]})
			}
		}

		// 3) Draw until the target is met or nothing is left.
		rel := closure.NewRelation(n)
		arcs := make([]Arc, 0)
		current := 0.0
		for pool.len() > 0 && current < density {
			arc := pool.at(cfg.src.Intn(pool.len()))
			arcs = append(arcs, arc)
			rel.Relate(arc.From, arc.To, func(l, k int) {
				pool.remove(Arc{From: l, To: k})
			})
			current = rel.Density()
		}

		return &Graph{N: n, Arcs: arcs, Density: current}, nil
	}
}

// arcPool is a set of candidate arcs with O(1) uniform access and removal.
// Removal swaps the last element into the hole, so indices are not stable.
type arcPool struct {
	items []Arc
	index map[Arc]int
}

func newArcPool(capacity int) *arcPool {
	if capacity < 0 {
		capacity = 0
	}
	return &arcPool{items: make([]Arc, 0, capacity), index: make(map[Arc]int, capacity)}
}

func (p *arcPool) len() int { return len(p.items) }

func (p *arcPool) at(i int) Arc { return p.items[i] }

func (p *arcPool) add(a Arc) {
	if _, ok := p.index[a]; ok {
		return
	}
	p.index[a] = len(p.items)
	p.items = append(p.items, a)
}

func (p *arcPool) remove(a Arc) {
	i, ok := p.index[a]
	if !ok {
		return
	}
	last := len(p.items) - 1
	moved := p.items[last]
	p.items[i] = moved
	p.index[moved] = i
	p.items = p.items[:last]
	delete(p.index, a)
}
