package rng_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maneuvergen/rng"
)

// TestSource_Deterministic checks that equal seeds replay equal streams.
func TestSource_Deterministic(t *testing.T) {
	a, b := rng.New(42), rng.New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.Perm(20), b.Perm(20))
	assert.Equal(t, int64(42), a.Seed())
}

// TestDerive_IndependentOfParent ensures deriving a stream does not advance
// a Source built from the same seed and that streams differ.
func TestDerive_IndependentOfParent(t *testing.T) {
	parent := rng.New(7)
	first := parent.Intn(1 << 30)

	_ = rng.Derive(7, 1)
	again := rng.New(7)
	assert.Equal(t, first, again.Intn(1<<30))

	s1, s2 := rng.Derive(7, 1), rng.Derive(7, 2)
	assert.NotEqual(t, s1.Seed(), s2.Seed())
	assert.Equal(t, rng.Derive(7, 1).Seed(), s1.Seed())
}

func TestIntRange(t *testing.T) {
	src := rng.New(1)
	for i := 0; i < 500; i++ {
		v, err := src.IntRange(5, 10)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, 5)
		assert.LessOrEqual(t, v, 10)
	}
	v, err := src.IntRange(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = src.IntRange(4, 3)
	assert.ErrorIs(t, err, rng.ErrEmptyRange)
}

func TestRoundedUniform(t *testing.T) {
	src := rng.New(3)
	for i := 0; i < 200; i++ {
		v := src.RoundedUniform(1, 3, 5)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 3.0)
		assert.InDelta(t, v, float64(int64(v*1e5+0.5))/1e5, 1e-9)
	}
	assert.Equal(t, 1.0, src.RoundedUniform(1, 1, 5))
}

// TestSample covers distinctness, bounds and the impossible case.
func TestSample(t *testing.T) {
	src := rng.New(11)
	pop := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	orig := append([]int(nil), pop...)

	got, err := src.Sample(pop, 4)
	require.NoError(t, err)
	assert.Len(t, got, 4)
	assert.Equal(t, orig, pop, "population must not be modified")

	seen := map[int]bool{}
	for _, v := range got {
		assert.Contains(t, pop, v)
		assert.False(t, seen[v], "duplicate %d", v)
		seen[v] = true
	}

	all, err := src.Sample(pop, len(pop))
	require.NoError(t, err)
	sort.Ints(all)
	assert.Equal(t, orig, all)

	empty, err := src.Sample(pop, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = src.Sample(pop, 10)
	assert.ErrorIs(t, err, rng.ErrSampleTooLarge)
	_, err = src.Sample(pop, -1)
	assert.ErrorIs(t, err, rng.ErrSampleTooLarge)
}

func TestPerm_IsPermutation(t *testing.T) {
	p := rng.New(5).Perm(50)
	sort.Ints(p)
	for i, v := range p {
		assert.Equal(t, i, v)
	}
}
