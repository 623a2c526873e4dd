package ints_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracefold/ints"
	"github.com/katalvlaran/tracefold/separation"
)

func TestGuard_Test(t *testing.T) {
	s := ints.Store{"i": 2, "n": 3}
	cases := []struct {
		g    ints.Guard
		want bool
	}{
		{ints.Guard{Var: "i", Op: ints.Lt, Const: 3}, true},
		{ints.Guard{Var: "i", Op: ints.Ge, Const: 3}, false},
		{ints.Guard{Var: "i", Op: ints.Lt, Rhs: "n"}, true},
		{ints.Guard{Var: "n", Op: ints.Eq, Rhs: "i"}, false},
		{ints.Guard{Var: "missing", Op: ints.Eq, Const: 0}, true},
		{ints.Guard{Var: "i", Op: ints.Op("??"), Const: 0}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.g.Test(s), tc.g.String())
	}
}

func TestCandidates(t *testing.T) {
	gs := ints.Candidates([]string{"i", "n"}, []int{0, 1}, []ints.Op{ints.Lt, ints.Ge})
	require.Len(t, gs, 2*2*2+2*2)
	assert.Equal(t, "i < 0", gs[0].String())
	assert.Equal(t, "i < n", gs[8].String())
}

func TestLinearOverInts(t *testing.T) {
	inf := separation.NewLinear[ints.Store, ints.Guard](ints.Domain{},
		ints.Candidates([]string{"i", "n"}, nil, ints.Ops))
	g, ok := inf.Infer(
		[]ints.Store{{"i": 0, "n": 2}, {"i": 1, "n": 2}},
		[]ints.Store{{"i": 2, "n": 2}},
	)
	require.True(t, ok)
	assert.Equal(t, "i < n", g.String())
}

func TestParseAndRender(t *testing.T) {
	op, err := ints.ParseOp(">=")
	require.NoError(t, err)
	assert.Equal(t, ints.Ge, op)
	_, err = ints.ParseOp("=>")
	assert.Error(t, err)

	assert.Equal(t, "{i=1 n=-3}", ints.Store{"n": -3, "i": 1}.String())
	assert.Equal(t, "skip", ints.Skip.String())
}
