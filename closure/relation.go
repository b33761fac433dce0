// SPDX-License-Identifier: MIT
// Package: maneuvergen/closure
//
// relation.go - n×n boolean closure relation with add-pair-and-propagate.

package closure

// Arc is an ordered precedence pair: To cannot start before From finishes.
type Arc struct {
	From int
	To   int
}

// Relation is the transitive closure of the arcs related so far, indexed by
// switch numbers 1..n (row/column 0 unused). The zero value is not usable;
// construct with NewRelation.
type Relation struct {
	n     int
	data  []bool // (n+1)×(n+1) row-major; data[i*(n+1)+j] ⇔ i precedes j
	count int    // number of marked cells
}

// NewRelation returns an empty relation over n switches.
// Complexity: O(n²) memory.
func NewRelation(n int) *Relation {
	if n < 0 {
		n = 0
	}
	return &Relation{n: n, data: make([]bool, (n+1)*(n+1))}
}

// N returns the number of switches.
func (r *Relation) N() int { return r.n }

// Related reports whether i precedes j (directly or transitively).
// Switches outside 1..n are never related.
func (r *Relation) Related(i, j int) bool {
	if !r.valid(i) || !r.valid(j) {
		return false
	}
	return r.data[i*(r.n+1)+j]
}

func (r *Relation) valid(i int) bool { return i >= 1 && i <= r.n }

// Count returns the number of related ordered pairs.
func (r *Relation) Count() int { return r.count }

// Relate adds the pair (i,j) and propagates it: every element of
// {i} ∪ {l : l precedes i} becomes related to every element of
// {j} ∪ {k : j precedes k}. visit, if non-nil, is called for every such
// (predecessor, successor) pair, already related or not, in row-major order of
// the two sets. It returns the number of newly related pairs.
//
// Pairs with an endpoint outside 1..n are ignored and relate nothing.
//
// Complexity: O(n + |pred|·|succ|).
func (r *Relation) Relate(i, j int, visit func(l, k int)) int {
	if !r.valid(i) || !r.valid(j) {
		return 0
	}
	stride := r.n + 1

	// Snapshot both sets before any mutation.
	preds := make([]int, 0, 8)
	preds = append(preds, i)
	succs := make([]int, 0, 8)
	succs = append(succs, j)
	var x int
	for x = 1; x <= r.n; x++ {
		if r.data[x*stride+i] {
			preds = append(preds, x)
		}
		if r.data[j*stride+x] {
			succs = append(succs, x)
		}
	}

	added := 0
	var l, k, idx int
	for _, l = range preds {
		for _, k = range succs {
			idx = l*stride + k
			if !r.data[idx] {
				r.data[idx] = true
				added++
			}
			if visit != nil {
				visit(l, k)
			}
		}
	}
	r.count += added
	return added
}

// Density returns Count normalized by n·(n-1)/2; 0 when n < 2.
func (r *Relation) Density() float64 {
	return OrderStrength(r.n, r.count)
}

// OrderStrength normalizes a related-pair count by the maximum number of
// pairs n·(n-1)/2. It returns 0 when n < 2 (no pair can exist).
func OrderStrength(n, count int) float64 {
	if n < 2 {
		return 0
	}
	total := float64(n*(n-1)) / 2
	return float64(count) / total
}
