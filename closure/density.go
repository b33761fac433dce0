// SPDX-License-Identifier: MIT
// Package: maneuvergen/closure
//
// density.go - post-hoc order strength of an arc list.

package closure

// Density computes the order strength of arcs over n switches.
//
// Algorithm:
//  1. Keep a pending multiset of the input arcs.
//  2. Take the next pending arc (i,j) in input order and Relate it.
//  3. Every visited (predecessor, successor) pair that is still pending is
//     removed once: it is implied, not an independent input arc.
//  4. Repeat until nothing is pending; normalize the related-pair count.
//
// The arcs slice is never modified. Arcs with endpoints outside 1..n are
// ignored. Running Density twice on the same input yields the same value.
//
// Complexity: O(|arcs|·n²) time worst case, O(n² + |arcs|) space.
func Density(n int, arcs []Arc) float64 {
	rel := NewRelation(n)
	Close(rel, arcs)
	return rel.Density()
}

// Close relates every arc of arcs into rel using the pending-set procedure
// described on Density and returns rel for chaining.
func Close(rel *Relation, arcs []Arc) *Relation {
	pending := make(map[Arc]int, len(arcs))
	for _, a := range arcs {
		pending[a]++
	}

	var a Arc
	for _, a = range arcs {
		if pending[a] == 0 {
			continue // already implied by an earlier arc
		}
		if !inRange(rel.n, a) {
			pending[a]--
			continue
		}
		rel.Relate(a.From, a.To, func(l, k int) {
			key := Arc{From: l, To: k}
			if pending[key] > 0 {
				pending[key]--
			}
		})
	}
	return rel
}

func inRange(n int, a Arc) bool {
	return a.From >= 1 && a.From <= n && a.To >= 1 && a.To <= n
}
