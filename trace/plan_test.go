package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracefold/trace"
)

func TestPlan_Empty(t *testing.T) {
	var p trace.Plan[int, string]
	assert.True(t, p.IsEmpty())
	assert.Equal(t, 0, p.Len())
	_, ok := p.FirstState()
	assert.False(t, ok)
	_, err := p.StateAt(0)
	assert.ErrorIs(t, err, trace.ErrIndexOutOfRange)
	assert.Empty(t, p.Actions())
}

func TestPlan_Accessors(t *testing.T) {
	steps := []trace.Step[int, string]{{Action: "a", State: 1}, {Action: "b", State: 2}}
	p := trace.New(0, steps...)
	steps[0].Action = "mutated"

	require.False(t, p.IsEmpty())
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, 2, p.Steps())
	assert.Equal(t, []string{"a", "b"}, p.Actions())

	s, err := p.StateAt(2)
	require.NoError(t, err)
	assert.Equal(t, 2, s)
	a, err := p.ActionAt(0)
	require.NoError(t, err)
	assert.Equal(t, "a", a)
	_, err = p.ActionAt(2)
	assert.ErrorIs(t, err, trace.ErrIndexOutOfRange)

	last, ok := p.LastState()
	assert.True(t, ok)
	assert.Equal(t, 2, last)

	var got []int
	p.Each(func(i int, from int, _ string, to int) { got = append(got, from, to) })
	assert.Equal(t, []int{0, 1, 1, 2}, got)
}

func TestPlan_SingleState(t *testing.T) {
	p := trace.New[int, string](7)
	assert.Equal(t, 1, p.Len())
	last, ok := p.LastState()
	assert.True(t, ok)
	assert.Equal(t, 7, last)
}
