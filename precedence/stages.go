// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// stages.go - stage partitioner shared by the stage-based topologies.
//
// Contract:
//   - 1 ≤ k ≤ n (else ErrTooFewStages / ErrTooManyStages, with ErrInvalidConfig).
//   - k-1 closes are sampled without replacement from positions 1..n-1;
//     position n is always a close; every other position is an open.
//   - A close belongs to its own stage; the switch after a close starts the
//     next stage.
//
// Complexity: O(n) time and space.

package precedence

import (
	"fmt"

	"github.com/katalvlaran/maneuvergen/rng"
)

// Operation tags a switch as opening or closing inside its stage.
type Operation byte

// Operations.
const (
	OpOpen  Operation = 'O'
	OpClose Operation = 'C'
)

// Stages is an ordered stage partition of switches 1..n.
// Slices indexed by switch have length n+1 (index 0 unused); slices indexed
// by stage have length k+1 with stage 0 an empty sentinel, so "previous stage"
// lookups for stage 1 need no special case.
type Stages struct {
	// K is the number of stages.
	K int
	// Stage[i] is the stage number (1..K) of switch i.
	Stage []int
	// Op[i] is the operation of switch i.
	Op []Operation
	// Opens[s] lists the open switches of stage s in ascending order.
	Opens [][]int
	// Closes[s] lists the close switches of stage s (exactly one for s ≥ 1).
	Closes [][]int
}

// Partition splits switches 1..n into k stages using src.
func Partition(n, k int, src *rng.Source) (*Stages, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w: %w", methodPartition, n, ErrTooFewSwitches, ErrInvalidConfig)
	}
	if err := validateStages(methodPartition, n, k); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodPartition, ErrNeedRandSource)
	}

	// 1) Operations: n is always a close, k-1 more closes among 1..n-1.
	op := make([]Operation, n+1)
	for i := 1; i <= n; i++ {
		op[i] = OpOpen
	}
	op[n] = OpClose

	positions := make([]int, n-1)
	for i := range positions {
		positions[i] = i + 1
	}
	closes, err := src.Sample(positions, k-1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodPartition, err, ErrInvalidConfig)
	}
	for _, i := range closes {
		op[i] = OpClose
	}

	// 2) Stage numbers: increment after each close.
	st := &Stages{
		K:      k,
		Stage:  make([]int, n+1),
		Op:     op,
		Opens:  make([][]int, k+1),
		Closes: make([][]int, k+1),
	}
	current := 1
	for i := 1; i <= n; i++ {
		st.Stage[i] = current
		if op[i] == OpClose {
			st.Closes[current] = append(st.Closes[current], i)
			current++
		} else {
			st.Opens[current] = append(st.Opens[current], i)
		}
	}
	return st, nil
}

// N returns the number of switches covered by the partition.
func (s *Stages) N() int { return len(s.Stage) - 1 }

// Close returns the single close switch of stage s (1..K).
func (s *Stages) Close(stage int) int { return s.Closes[stage][0] }
