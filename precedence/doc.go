// Package precedence synthesizes precedence graphs over switches 1..n for
// maneuver-scheduling instances, in the "functional options + constructor
// closures" style: a single orchestrator (Build) resolves the options into an
// immutable configuration and runs one Constructor.
//
// Topologies:
//
//   - Independent: every close is preceded by the opens of its own stage.
//   - Intree:      Independent, plus each close is preceded by the closes of
//     the previous stage.
//   - Sequential:  opens are preceded by the previous stage's closes; a close
//     is preceded by its stage's opens, or by the previous closes
//     when the stage has no opens.
//   - Mixed:       stage 1 is Independent; every later stage picks Independent,
//     Intree or Sequential uniformly from a separate choice stream.
//   - Random:      arcs drawn from the pairs ordered by a random permutation
//     until the order strength reaches the requested density.
//
// The four stage-based topologies consume a stage partition (Partition): the
// switches 1..n are split into k ordered stages of zero or more "open"
// operations followed by exactly one "close" operation.
//
// Every produced arc list is acyclic. Graph.Density is the order strength of
// its transitive closure, computed with package closure.
//
// Determinism:
//   - Same n, constructor, seed and option order ⇒ identical arc lists.
//   - WithSeed seeds both the main stream and the stage-choice stream used by
//     Mixed; WithRand/WithChoiceRand attach explicit sources.
//
// Errors:
//   - Sentinel errors only (see errors.go); branch with errors.Is.
//   - Configuration problems also match ErrInvalidConfig.
//
// Supporting helpers: TopologicalOrder, Levels and Predecessors inspect an arc
// list; WriteDOT exports it for Graphviz.
package precedence
