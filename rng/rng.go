// SPDX-License-Identifier: MIT
// Package: maneuvergen/rng
//
// rng.go - the seeded randomness source threaded through every generator call.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws, shuffles and samples.
//   - Encapsulation: no package-level generator; each caller owns its *Source.
//   - Independent streams: Derive mixes a seed and a stream id (SplitMix64) so
//     that one choice point can be seeded without disturbing the main stream.
//
// Concurrency:
//   - A *Source is NOT goroutine-safe. Do not share one across goroutines.

package rng

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrSampleTooLarge indicates a request for more distinct elements than the
// population holds (sampling without replacement is impossible).
var ErrSampleTooLarge = errors.New("rng: sample larger than population")

// ErrEmptyRange indicates an integer range [lo,hi] with lo > hi.
var ErrEmptyRange = errors.New("rng: empty range")

// Source is a deterministic pseudo-random generator handle.
type Source struct {
	r    *rand.Rand
	seed int64
}

// New returns a Source seeded verbatim with seed (0 is a valid seed).
// Complexity: O(1).
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed)), seed: seed}
}

// Derive returns an independent Source for (seed, stream). The parent stream
// seeded with the same seed is not advanced.
// Complexity: O(1).
func Derive(seed int64, stream uint64) *Source {
	return New(deriveSeed(seed, stream))
}

// Seed reports the seed the Source was created with.
func (s *Source) Seed() int64 { return s.seed }

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// using the SplitMix64 finalizer constants.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Intn returns a uniform integer in [0,n). n must be > 0.
func (s *Source) Intn(n int) int { return s.r.Intn(n) }

// Float64 returns a uniform real in [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// IntRange returns a uniform integer in the closed interval [lo,hi].
// Returns ErrEmptyRange if lo > hi.
// Complexity: O(1).
func (s *Source) IntRange(lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("IntRange: [%d,%d]: %w", lo, hi, ErrEmptyRange)
	}
	return lo + s.r.Intn(hi-lo+1), nil
}

// Uniform returns a uniform real in [lo,hi]. If lo == hi it returns lo.
// Complexity: O(1).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// RoundedUniform draws Uniform(lo,hi) and rounds it to the given number of
// decimal digits (half away from zero).
func (s *Source) RoundedUniform(lo, hi float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(s.Uniform(lo, hi)*scale) / scale
}

// Shuffle permutes a in place (Fisher–Yates).
// Complexity: O(len(a)).
func (s *Source) Shuffle(a []int) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = s.r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a random permutation of 0..n-1.
func (s *Source) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	s.Shuffle(p)
	return p
}

// Sample draws k distinct elements of population without replacement, in
// selection order. population is not modified.
// Returns ErrSampleTooLarge if k > len(population); k < 0 is treated the same.
// Complexity: O(len(population)) time and space.
func (s *Source) Sample(population []int, k int) ([]int, error) {
	if k < 0 || k > len(population) {
		return nil, fmt.Errorf("Sample: k=%d from %d: %w", k, len(population), ErrSampleTooLarge)
	}
	pool := make([]int, len(population))
	copy(pool, population)

	// Partial Fisher–Yates: the first k slots become the sample.
	var i, j int
	for i = 0; i < k; i++ {
		j = i + s.r.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k], nil
}

// Choice returns a uniform index in [0,n). n must be > 0.
func (s *Source) Choice(n int) int { return s.r.Intn(n) }
