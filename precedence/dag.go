// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// dag.go - structural queries over an arc list: predecessor lists,
// topological order (acyclicity check) and layering.
//
// Complexity:
//   - Time:   O(n + |arcs|) for each query.
//   - Memory: O(n + |arcs|).

package precedence

import "fmt"

// Visitation states for the depth-first topological sort.
const (
	white = iota // not visited yet
	gray         // on the recursion stack
	black        // fully explored
)

// Predecessors returns, for every switch j in 1..n, the switches i with an
// arc (i, j), in the order the arcs appear. Index 0 is unused.
// Arcs with endpoints outside 1..n yield ErrArcOutOfRange.
func Predecessors(n int, arcs []Arc) ([][]int, error) {
	preds := make([][]int, n+1)
	for _, a := range arcs {
		if err := checkArc(n, a); err != nil {
			return nil, err
		}
		preds[a.To] = append(preds[a.To], a.From)
	}
	return preds, nil
}

// successors is Predecessors in the other direction.
func successors(n int, arcs []Arc) ([][]int, error) {
	succ := make([][]int, n+1)
	for _, a := range arcs {
		if err := checkArc(n, a); err != nil {
			return nil, err
		}
		succ[a.From] = append(succ[a.From], a.To)
	}
	return succ, nil
}

func checkArc(n int, a Arc) error {
	if a.From < 1 || a.From > n || a.To < 1 || a.To > n {
		return fmt.Errorf("arc (%d,%d) with n=%d: %w", a.From, a.To, n, ErrArcOutOfRange)
	}
	return nil
}

// topoSorter holds the state of one depth-first traversal.
type topoSorter struct {
	succ  [][]int
	state []int
	order []int // post-order
}

// TopologicalOrder returns switches 1..n ordered so that every arc points
// forward. Roots are explored in ascending switch order.
//
// Errors:
//   - ErrArcOutOfRange for endpoints outside 1..n.
//   - ErrCycle if the arcs contain a cycle (self-loops included).
func TopologicalOrder(n int, arcs []Arc) ([]int, error) {
	succ, err := successors(n, arcs)
	if err != nil {
		return nil, fmt.Errorf("TopologicalOrder: %w", err)
	}
	t := &topoSorter{
		succ:  succ,
		state: make([]int, n+1),
		order: make([]int, 0, n),
	}
	for v := 1; v <= n; v++ {
		if t.state[v] == white {
			if err = t.visit(v); err != nil {
				return nil, fmt.Errorf("TopologicalOrder: %w", err)
			}
		}
	}
	// Reverse post-order.
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}
	return t.order, nil
}

func (t *topoSorter) visit(v int) error {
	switch t.state[v] {
	case gray:
		return fmt.Errorf("back edge into %d: %w", v, ErrCycle)
	case black:
		return nil
	}
	t.state[v] = gray
	for _, w := range t.succ[v] {
		if err := t.visit(w); err != nil {
			return err
		}
	}
	t.state[v] = black
	t.order = append(t.order, v)
	return nil
}

// IsAcyclic reports whether arcs form a DAG over 1..n.
func IsAcyclic(n int, arcs []Arc) bool {
	_, err := TopologicalOrder(n, arcs)
	return err == nil
}

// Levels layers the switches: level 0 holds the switches without
// predecessors, and every other switch sits one level below its deepest
// predecessor. Switches inside a level are ascending. This is the layered
// layout rooted at predecessor-free switches used for drawing.
//
// Errors: ErrArcOutOfRange, ErrCycle.
func Levels(n int, arcs []Arc) ([][]int, error) {
	succ, err := successors(n, arcs)
	if err != nil {
		return nil, fmt.Errorf("Levels: %w", err)
	}
	indeg := make([]int, n+1)
	for _, a := range arcs {
		indeg[a.To]++
	}

	level := make([]int, n+1)
	frontier := make([]int, 0, n)
	for v := 1; v <= n; v++ {
		if indeg[v] == 0 {
			frontier = append(frontier, v)
		}
	}

	// Kahn's algorithm: a switch is placed once all its predecessors are.
	placed := 0
	maxLevel := 0
	for head := 0; head < len(frontier); head++ {
		v := frontier[head]
		placed++
		if level[v] > maxLevel {
			maxLevel = level[v]
		}
		for _, w := range succ[v] {
			if level[v]+1 > level[w] {
				level[w] = level[v] + 1
			}
			indeg[w]--
			if indeg[w] == 0 {
				frontier = append(frontier, w)
			}
		}
	}
	if placed < n {
		return nil, fmt.Errorf("Levels: %d of %d switches unplaced: %w", n-placed, n, ErrCycle)
	}

	layers := make([][]int, maxLevel+1)
	for v := 1; v <= n; v++ {
		layers[level[v]] = append(layers[level[v]], v)
	}
	return layers, nil
}
