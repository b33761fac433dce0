package precedence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maneuvergen/precedence"
	"github.com/katalvlaran/maneuvergen/rng"
)

// TestPartition_Structure checks the partition invariants across seeds and sizes.
func TestPartition_Structure(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ n, k int }{{1, 1}, {4, 2}, {10, 1}, {10, 10}, {25, 7}} {
		for seed := int64(0); seed < 20; seed++ {
			st, err := precedence.Partition(tc.n, tc.k, rng.New(seed))
			require.NoError(t, err)
			require.Equal(t, tc.k, st.K)
			require.Equal(t, tc.n, st.N())

			// n is always a close and the last switch of stage k.
			assert.Equal(t, precedence.OpClose, st.Op[tc.n])
			assert.Equal(t, tc.k, st.Stage[tc.n])

			closes := 0
			for i := 1; i <= tc.n; i++ {
				if st.Op[i] == precedence.OpClose {
					closes++
				}
				if i > 1 {
					// Stage numbers never decrease and step up right after a close.
					want := st.Stage[i-1]
					if st.Op[i-1] == precedence.OpClose {
						want++
					}
					assert.Equal(t, want, st.Stage[i], "n=%d k=%d seed=%d i=%d", tc.n, tc.k, seed, i)
				}
			}
			assert.Equal(t, tc.k, closes)

			assert.Empty(t, st.Opens[0])
			assert.Empty(t, st.Closes[0])
			covered := 0
			for s := 1; s <= tc.k; s++ {
				require.Len(t, st.Closes[s], 1, "stage %d must have one close", s)
				c := st.Close(s)
				for _, o := range st.Opens[s] {
					assert.Less(t, o, c, "open %d must precede close %d", o, c)
					assert.Equal(t, s, st.Stage[o])
				}
				covered += len(st.Opens[s]) + 1
			}
			assert.Equal(t, tc.n, covered)
		}
	}
}

func TestPartition_Errors(t *testing.T) {
	t.Parallel()

	_, err := precedence.Partition(3, 4, rng.New(1))
	assert.ErrorIs(t, err, precedence.ErrTooManyStages)
	assert.ErrorIs(t, err, precedence.ErrInvalidConfig)

	_, err = precedence.Partition(3, 0, rng.New(1))
	assert.ErrorIs(t, err, precedence.ErrTooFewStages)

	_, err = precedence.Partition(0, 1, rng.New(1))
	assert.ErrorIs(t, err, precedence.ErrTooFewSwitches)

	_, err = precedence.Partition(3, 2, nil)
	assert.ErrorIs(t, err, precedence.ErrNeedRandSource)
}

func TestPartition_Deterministic(t *testing.T) {
	a, err := precedence.Partition(30, 6, rng.New(99))
	require.NoError(t, err)
	b, err := precedence.Partition(30, 6, rng.New(99))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
