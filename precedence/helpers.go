// Package precedence: per-stage arc rules shared by the stage-based
// constructors, plus the common build loop.
package precedence

import (
	"fmt"

	"github.com/katalvlaran/maneuvergen/closure"
)

// stageRule appends the arcs contributed by stage s (1..K) of st to arcs and
// returns the extended slice. Rules emit arcs in ascending target order so
// that the overall list follows switch order, stage by stage.
type stageRule func(st *Stages, s int, arcs []Arc) []Arc

// independentStage: the close of stage s is preceded by the opens of stage s.
func independentStage(st *Stages, s int, arcs []Arc) []Arc {
	j := st.Close(s)
	for _, i := range st.Opens[s] {
		arcs = append(arcs, Arc{From: i, To: j})
	}
	return arcs
}

// intreeStage: independentStage, then the closes of stage s-1 also precede
// the close of stage s.
func intreeStage(st *Stages, s int, arcs []Arc) []Arc {
	arcs = independentStage(st, s, arcs)
	j := st.Close(s)
	for _, i := range st.Closes[s-1] {
		arcs = append(arcs, Arc{From: i, To: j})
	}
	return arcs
}

// sequentialStage: every open of stage s waits for the closes of stage s-1;
// the close of stage s waits for its opens, or for the closes of stage s-1
// when the stage has no opens.
func sequentialStage(st *Stages, s int, arcs []Arc) []Arc {
	for _, j := range st.Opens[s] {
		for _, i := range st.Closes[s-1] {
			arcs = append(arcs, Arc{From: i, To: j})
		}
	}
	j := st.Close(s)
	from := st.Opens[s]
	if len(from) == 0 {
		from = st.Closes[s-1]
	}
	for _, i := range from {
		arcs = append(arcs, Arc{From: i, To: j})
	}
	return arcs
}

// buildStaged validates (n,k), partitions with cfg.src and applies pick(s)
// for every stage in order. pick is only called after validation succeeds.
func buildStaged(method string, n, k int, cfg builderConfig, pick func(s int) stageRule) (*Graph, error) {
	if err := validateStages(method, n, k); err != nil {
		return nil, err
	}
	if cfg.src == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	st, err := Partition(n, k, cfg.src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	arcs := make([]Arc, 0, n)
	for s := 1; s <= st.K; s++ {
		arcs = pick(s)(st, s, arcs)
	}

	return &Graph{N: n, Arcs: arcs, Density: closure.Density(n, arcs)}, nil
}
