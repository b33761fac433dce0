// SPDX-License-Identifier: MIT
// Package: maneuvergen/precedence
//
// impl_mixed.go - Mixed constructor.
//
// Contract:
//   - Stage 1 follows the Independent rule.
//   - Each stage s ≥ 2 picks Independent, Intree or Sequential uniformly, in
//     stage order, from the choice stream (cfg.choice). The partition itself
//     uses the main stream, so the topology choice never shifts the other draws.
//   - Requires both sources (else ErrNeedRandSource).

package precedence

import "fmt"

// mixedRules is the per-stage menu; the index is the drawn choice.
var mixedRules = [...]stageRule{independentStage, intreeStage, sequentialStage}

// Mixed returns a Constructor whose stages each adopt one of the other
// stage-based rules at random.
func Mixed(k int) Constructor {
	return func(n int, cfg builderConfig) (*Graph, error) {
		if err := validateStages(methodMixed, n, k); err != nil {
			return nil, err
		}
		if cfg.choice == nil {
			return nil, fmt.Errorf("%s: choice stream: %w", methodMixed, ErrNeedRandSource)
		}
		return buildStaged(methodMixed, n, k, cfg, func(s int) stageRule {
			if s == 1 {
				return independentStage
			}
			return mixedRules[cfg.choice.Choice(len(mixedRules))]
		})
	}
}
