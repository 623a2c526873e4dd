package rpni_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracefold/cfg"
	"github.com/katalvlaran/tracefold/rpni"
	"github.com/katalvlaran/tracefold/trace"
)

func TestExtendPTP_PrefixSharing(t *testing.T) {
	ab := plan(0, "a", 1, "b", 2)
	ac := plan(0, "a", 5, "c", 3)
	g := newGeneralizer(rpni.DefaultOptions(skip))

	for _, order := range [][]trace.Plan[int, op]{{ab, ac}, {ac, ab}} {
		c := cfg.New[int, op, cond]()
		for _, p := range order {
			require.NoError(t, g.ExtendPTP(c, p))
		}
		assert.Equal(t, 5, c.NodeCount(), "entry, exit, a, ab, ac")
		deg, _ := c.OutDegree(c.Entry())
		assert.Equal(t, 1, deg, "the a prefix is shared")

		n1, ok := walk(c, "a")
		require.True(t, ok)
		deg, _ = c.OutDegree(n1)
		assert.Equal(t, 2, deg)
		path, _ := c.Path(n1)
		assert.Equal(t, []op{"a"}, path)

		exit, _ := c.State(c.Exit())
		assert.Len(t, exit.Points, 2)
	}
}

func TestExtendPTP_Idempotent(t *testing.T) {
	g := newGeneralizer(rpni.DefaultOptions(skip))
	c := cfg.New[int, op, cond]()
	p := plan(0, "a", 1, "b", 2)

	require.NoError(t, g.ExtendPTP(c, p))
	nodes, edges := c.NodeCount(), c.EdgeCount()
	require.NoError(t, g.ExtendPTP(c, p))
	assert.Equal(t, nodes, c.NodeCount())
	assert.Equal(t, edges, c.EdgeCount(), "terminal edge is not duplicated")

	n1, _ := walk(c, "a")
	s, _ := c.State(n1)
	assert.Equal(t, []cfg.TracePoint[int, op]{{Value: 1, Next: "b"}, {Value: 1, Next: "b"}}, s.Points)

	entry, _ := c.State(c.Entry())
	assert.Equal(t, op("a"), entry.Points[0].Next)
}

func TestExtendPTP_EdgeCases(t *testing.T) {
	g := newGeneralizer(rpni.DefaultOptions(skip))
	c := cfg.New[int, op, cond]()

	require.NoError(t, g.ExtendPTP(c, trace.Plan[int, op]{}))
	assert.Equal(t, 2, c.NodeCount(), "empty trace is a no-op")
	assert.Equal(t, 0, c.EdgeCount())

	require.NoError(t, g.ExtendPTP(c, plan(4)))
	assert.True(t, c.HasEdge(c.Entry(), c.Exit(), skip), "single-state trace ends at entry")
	entry, _ := c.State(c.Entry())
	assert.Equal(t, []cfg.TracePoint[int, op]{{Value: 4, Next: skip}}, entry.Points)

	err := g.ExtendPTP(c, plan(0, "a", 1, "skip", 2))
	assert.ErrorIs(t, err, rpni.ErrReservedAction)
	assert.Equal(t, 2, c.NodeCount(), "rejected trace leaves no trace")
}

func TestExtendPTP_NodeLimit(t *testing.T) {
	opts := rpni.DefaultOptions(skip)
	opts.MaxNodes = 4
	g := newGeneralizer(opts)
	c := cfg.New[int, op, cond]()

	require.NoError(t, g.ExtendPTP(c, plan(0, "a", 1, "b", 2)))
	require.NoError(t, g.ExtendPTP(c, plan(0, "a", 1, "b", 2)), "no new nodes needed")
	err := g.ExtendPTP(c, plan(0, "a", 1, "c", 2))
	assert.ErrorIs(t, err, rpni.ErrNodeLimit)
	assert.Equal(t, 4, c.NodeCount())
}
