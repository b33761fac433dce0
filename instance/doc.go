// SPDX-License-Identifier: MIT

// Package instance assembles, validates and serializes maneuver-scheduling
// instances for the restoration of electric power distribution networks.
//
// An Instance has n switches (1..n), m teams (0..m-1), a maneuver duration and
// a technology (manual or remote) per switch, one travel-time matrix per team
// over locations 0..n (0 is the team start), an acyclic precedence relation
// and its order strength.
//
// Generation is a pure function of Config: the seed drives one rng.Source in
// a fixed order (technology, durations, travel times, precedence), so equal
// configs always yield equal instances. Config.Validate runs before any
// randomness is consumed.
//
// The text format written by WriteTo and read back by Read is:
//
//	n m density
//	i technology duration          (n lines)
//	i count pred_1 ... pred_count  (n lines)
//	s[k][i][0] ... s[k][i][n]      ((n+1) lines per team k)
//
// Predecessors appear in the order their arcs were produced. Density is
// rounded to three decimals.
package instance
