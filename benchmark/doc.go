// SPDX-License-Identifier: MIT

// Package benchmark generates named groups of instances in one run.
//
// A Group sweeps switch counts, team counts and precedence families over a
// list of seeds. Families are tagged S (sequential), T (intree),
// I (independent), M (mixed) and R (random, parameter in percent). Instance
// files are named [prefix-]NNN-MM-T-PP-SS[-suffix], SS being the 1-based
// position of the seed in the group.
package benchmark
