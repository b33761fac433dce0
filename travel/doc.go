// SPDX-License-Identifier: MIT

// Package travel holds the per-team travel-time matrices of an instance and
// the relaxation that makes them satisfy the triangular inequality.
//
// A Matrix covers locations 0..n, where 0 is the team start location and
// 1..n are switches. Entry (i, j) is the time a team needs to go from i to j.
// Visiting an intermediate switch l costs its maneuver duration on top of the
// two legs, so the inequality enforced by Relax is node-weighted:
//
//	s[i][j] ≤ s[i][l] + d(l) + s[l][j],   d(0) = 0.
//
// Relax is a Floyd–Warshall pass with the intermediate location as the
// outermost loop. Teams are independent and are relaxed concurrently; the
// passes inside one matrix are strictly sequential.
package travel
