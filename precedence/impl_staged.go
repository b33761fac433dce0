// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// impl_staged.go - Independent, Intree and Sequential constructors.
//
// Contract (all three):
//   - 1 ≤ k ≤ n (else ErrTooFewStages / ErrTooManyStages).
//   - Requires the main source (else ErrNeedRandSource).
//   - Arcs follow switch order; no arc repeats; the result is acyclic because
//     every arc points from a lower to a higher switch number.
//
// Complexity: O(n) partition + O(|arcs|) emission + density O(|arcs|·n²).

package precedence

// Independent returns a Constructor where each stage's close is preceded by
// that stage's opens; stages do not depend on one another.
func Independent(k int) Constructor {
	return func(n int, cfg builderConfig) (*Graph, error) {
		return buildStaged(methodIndependent, n, k, cfg, func(int) stageRule { return independentStage })
	}
}

// Intree returns a Constructor that chains closes stage to stage and fans in
// each stage's opens: the close of stage s waits for the opens of stage s and
// the close of stage s-1.
func Intree(k int) Constructor {
	return func(n int, cfg builderConfig) (*Graph, error) {
		return buildStaged(methodIntree, n, k, cfg, func(int) stageRule { return intreeStage })
	}
}

// Sequential returns a Constructor enforcing a strict linear stage order:
// nothing in stage s starts before the close of stage s-1.
func Sequential(k int) Constructor {
	return func(n int, cfg builderConfig) (*Graph, error) {
		return buildStaged(methodSequential, n, k, cfg, func(int) stageRule { return sequentialStage })
	}
}
