package precedence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maneuvergen/precedence"
)

func TestTopologicalOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		n       int
		arcs    []precedence.Arc
		wantErr error
	}{
		{"empty", 4, nil, nil},
		{"chain", 4, []precedence.Arc{{From: 3, To: 2}, {From: 2, To: 1}, {From: 1, To: 4}}, nil},
		{"diamond", 4, []precedence.Arc{{From: 1, To: 2}, {From: 1, To: 3}, {From: 2, To: 4}, {From: 3, To: 4}}, nil},
		{"cycle", 3, []precedence.Arc{{From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 1}}, precedence.ErrCycle},
		{"self-loop", 2, []precedence.Arc{{From: 2, To: 2}}, precedence.ErrCycle},
		{"out of range", 2, []precedence.Arc{{From: 1, To: 3}}, precedence.ErrArcOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			order, err := precedence.TopologicalOrder(tc.n, tc.arcs)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.False(t, precedence.IsAcyclic(tc.n, tc.arcs))
				return
			}
			require.NoError(t, err)
			require.Len(t, order, tc.n)
			pos := make(map[int]int, tc.n)
			for i, v := range order {
				pos[v] = i
			}
			for _, a := range tc.arcs {
				assert.Less(t, pos[a.From], pos[a.To], "arc %v", a)
			}
			assert.True(t, precedence.IsAcyclic(tc.n, tc.arcs))
		})
	}
}

func TestPredecessors(t *testing.T) {
	preds, err := precedence.Predecessors(4, []precedence.Arc{{From: 1, To: 4}, {From: 3, To: 4}, {From: 2, To: 3}})
	require.NoError(t, err)
	assert.Len(t, preds, 5)
	assert.Equal(t, []int{1, 3}, preds[4])
	assert.Equal(t, []int{2}, preds[3])
	assert.Empty(t, preds[1])

	_, err = precedence.Predecessors(2, []precedence.Arc{{From: 0, To: 1}})
	assert.ErrorIs(t, err, precedence.ErrArcOutOfRange)
}

func TestLevels(t *testing.T) {
	layers, err := precedence.Levels(6, []precedence.Arc{
		{From: 1, To: 3}, {From: 2, To: 3}, {From: 3, To: 6}, {From: 1, To: 6}, {From: 4, To: 5},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 4}, {3, 5}, {6}}, layers)

	layers, err = precedence.Levels(3, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}}, layers)

	_, err = precedence.Levels(2, []precedence.Arc{{From: 1, To: 2}, {From: 2, To: 1}})
	assert.ErrorIs(t, err, precedence.ErrCycle)
}
