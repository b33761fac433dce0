package precedence_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maneuvergen/precedence"
)

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	arcs := []precedence.Arc{{From: 1, To: 3}, {From: 2, To: 3}}
	err := precedence.WriteDOT(&buf, "demo", 3, arcs, func(i int) string {
		return strconv.Itoa(i) + "(R)"
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "digraph demo {")
	assert.Contains(t, out, "rankdir=TB")
	assert.Contains(t, out, "shape=circle")
	assert.Contains(t, out, `label="1(R)"`)
	assert.Contains(t, out, "1 -> 3")
	assert.Contains(t, out, "2 -> 3")
}

func TestWriteDOT_Isolated(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, precedence.WriteDOT(&buf, "g", 2, nil, nil))
	assert.NotContains(t, buf.String(), "->")
	assert.NotContains(t, buf.String(), "label")
}

func TestWriteDOT_Errors(t *testing.T) {
	var buf bytes.Buffer
	err := precedence.WriteDOT(&buf, "g", 2, []precedence.Arc{{From: 1, To: 5}}, nil)
	assert.ErrorIs(t, err, precedence.ErrArcOutOfRange)

	err = precedence.WriteDOT(&buf, "g", 2, []precedence.Arc{{From: 2, To: 2}}, nil)
	assert.ErrorIs(t, err, precedence.ErrCycle)
}
