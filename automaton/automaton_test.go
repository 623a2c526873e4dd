package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/tracefold/automaton"
	"github.com/katalvlaran/tracefold/trace"
)

type upd string

func (u upd) String() string { return string(u) }

type testAutomaton = automaton.Automaton[int, upd]

// DeterminizeSuite exercises determinization on a fan:
//
//	I -x-> a -y-> c
//	I -x-> b -y-> d
//	I -z-> b
type DeterminizeSuite struct {
	suite.Suite
	a      *testAutomaton
	sa, sb automaton.StateID
	sc, sd automaton.StateID
}

func (s *DeterminizeSuite) SetupTest() {
	s.a = automaton.New[int, upd]()
	s.sa, s.sb = s.a.AddState("a"), s.a.AddState("b")
	s.sc, s.sd = s.a.AddState("c"), s.a.AddState("d")
	for _, tr := range []struct {
		from, to automaton.StateID
		u        upd
	}{
		{s.a.Initial(), s.sa, "x"},
		{s.a.Initial(), s.sb, "x"},
		{s.a.Initial(), s.sb, "z"},
		{s.sa, s.sc, "y"},
		{s.sb, s.sd, "y"},
	} {
		_, err := s.a.AddTransition(tr.from, tr.to, tr.u)
		s.Require().NoError(err)
	}
	s.Require().NoError(s.a.AddTracePoints(s.sa, 1))
	s.Require().NoError(s.a.AddTracePoints(s.sb, 2))
}

func (s *DeterminizeSuite) TestMakeUpdateDeterministic() {
	s.False(s.a.IsStateUpdateDeterministic(s.a.Initial()))
	s.False(s.a.IsUpdateDeterministic())

	changed, err := s.a.MakeUpdateDeterministic(s.a.Initial())
	s.Require().NoError(err)
	s.True(changed)
	s.True(s.a.IsStateUpdateDeterministic(s.a.Initial()))
	s.False(s.a.Contains(s.sb))

	edges, err := s.a.Transitions(s.a.Initial())
	s.Require().NoError(err)
	s.Len(edges, 2, "one x edge and one z edge")

	pts, _ := s.a.Points(s.sa)
	s.Equal([]int{1, 2}, pts)

	// a now has two y edges: only Fold cascades.
	s.False(s.a.IsStateUpdateDeterministic(s.sa))

	changed, err = s.a.MakeUpdateDeterministic(s.a.Initial())
	s.Require().NoError(err)
	s.False(changed, "already deterministic")
}

func (s *DeterminizeSuite) TestFoldCascades() {
	s.Require().NoError(s.a.Fold(s.a.Initial()))
	s.True(s.a.IsUpdateDeterministic())
	s.Len(s.a.States(), 4, "initial, final, a, c")

	to, ok, err := s.a.FindTransition(s.a.Initial(), "z")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(s.sa, to, "z follows b into a")
	_, ok, _ = s.a.FindTransition(s.a.Initial(), "missing")
	s.False(ok)
}

func (s *DeterminizeSuite) TestCloneIsIndependent() {
	c := s.a.Clone()
	s.Require().NoError(s.a.Fold(s.a.Initial()))
	s.True(c.Contains(s.sb))
	s.False(c.IsUpdateDeterministic())
	pts, _ := c.Points(s.sa)
	s.Equal([]int{1}, pts)
}

func TestDeterminizeSuite(t *testing.T) {
	suite.Run(t, new(DeterminizeSuite))
}

func TestMerge_Protection(t *testing.T) {
	a := automaton.New[int, upd]()
	x := a.AddState("x")
	_, err := a.AddTransition(a.Initial(), x, "u")
	require.NoError(t, err)

	assert.ErrorIs(t, a.MergeState(a.Final(), x), automaton.ErrMergeFinal)
	assert.ErrorIs(t, a.MergeState(x, a.Final()), automaton.ErrMergeFinal)
	assert.ErrorIs(t, a.MergeState(a.Initial(), x), automaton.ErrMergeInitial)
	require.NoError(t, a.MergeState(x, x))
	assert.Len(t, a.States(), 3, "rejected merges change nothing")

	_, _, err = a.MergeStates([]automaton.StateID{x, a.Final()})
	assert.ErrorIs(t, err, automaton.ErrMergeFinal)
	assert.True(t, a.Contains(x))
}

func TestMergeStates_InitialSurvives(t *testing.T) {
	a := automaton.New[int, upd]()
	x, y := a.AddState("x"), a.AddState("y")
	require.NoError(t, a.AddTracePoints(x, 7))

	got, ok, err := a.MergeStates([]automaton.StateID{x, y, a.Initial()})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, a.Initial(), got)
	assert.False(t, a.Contains(x))
	assert.False(t, a.Contains(y))
	pts, _ := a.Points(a.Initial())
	assert.Equal(t, []int{7}, pts)

	_, ok, err = a.MergeStates([]automaton.StateID{x, y})
	require.NoError(t, err)
	assert.False(t, ok, "dead states are ignored")
}

func TestMakeUpdateDeterministic_StateAbsorbed(t *testing.T) {
	// x -u-> x and x -u-> y: x is merged into y when y comes first.
	a := automaton.New[int, upd]()
	y, x := a.AddState("y"), a.AddState("x")
	_, _ = a.AddTransition(a.Initial(), x, "v")
	_, _ = a.AddTransition(x, y, "u")
	_, _ = a.AddTransition(x, x, "u")

	changed, err := a.MakeUpdateDeterministic(x)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, a.IsUpdateDeterministic())
	assert.Equal(t, []automaton.StateID{a.Final()}, a.Unreachable())
}

func TestAddPlan_SharesPrefixes(t *testing.T) {
	a := automaton.New[int, upd]()
	p1 := trace.New(0, trace.Step[int, upd]{Action: "u", State: 1}, trace.Step[int, upd]{Action: "v", State: 2})
	p2 := trace.New(0, trace.Step[int, upd]{Action: "u", State: 3}, trace.Step[int, upd]{Action: "w", State: 4})

	require.NoError(t, a.AddPlan(p1, "end"))
	require.NoError(t, a.AddPlan(p2, "end"))
	require.NoError(t, a.AddPlan(trace.Plan[int, upd]{}, "end"))

	assert.True(t, a.IsUpdateDeterministic())
	assert.Len(t, a.States(), 5, "initial, final, u, uv, uw")
	assert.Empty(t, a.Unreachable())

	mid, ok, err := a.FindTransition(a.Initial(), "u")
	require.NoError(t, err)
	require.True(t, ok)
	pts, _ := a.Points(mid)
	assert.Equal(t, []int{1, 3}, pts)
	fin, _ := a.Points(a.Final())
	assert.Equal(t, []int{2, 4}, fin)
}
