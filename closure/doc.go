// Package closure maintains the transitive closure of a precedence relation
// over switches 1..n and derives its order strength (density).
//
// The same Relation backs both the post-hoc density evaluator (Density) and
// the incremental bookkeeping of the random precedence builder, so the two
// always agree bit-for-bit on a given arc list.
//
// Order strength of a relation R over n elements:
//
//	OS(R) = |closure(R)| / (n·(n-1)/2)
//
// Complexity:
//   - Relate: O(n + |pred|·|succ|) per call.
//   - Density: O(|arcs|·n²) worst case, O(n²) memory.
package closure
