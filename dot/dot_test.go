package dot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tracefold/automaton"
	"github.com/katalvlaran/tracefold/cfg"
	"github.com/katalvlaran/tracefold/core"
	"github.com/katalvlaran/tracefold/dot"
	"github.com/katalvlaran/tracefold/ints"
)

func TestMarshal_KeepsParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithLoops[string, string](), core.WithMultiEdges[string, string]())
	a, b := g.AddNode("A"), g.AddNode("B")
	_, _ = g.AddEdge(a, b, "x")
	_, _ = g.AddEdge(a, b, "y")
	_, _ = g.AddEdge(b, b, "loop")

	out, err := dot.Marshal(g, "G",
		func(_ core.NodeID, p string) (string, string) { return p, "" },
		func(l string) string { return l })
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(s, "digraph G {"), s)
	assert.Equal(t, 2, strings.Count(s, "n0 -> n1"))
	assert.Contains(t, s, `label="loop"`)
	assert.Contains(t, s, `label="A"`)
}

func TestCFG(t *testing.T) {
	c := cfg.New[ints.Store, ints.Stmt, ints.Guard]()
	n := c.AddNode([]ints.Stmt{"i++"})
	_, err := c.AddEdge(c.Entry(), n, "i++")
	require.NoError(t, err)
	_, err = c.AddEdge(n, c.Exit(), ints.Skip)
	require.NoError(t, err)

	out, err := dot.CFG(c, "learned")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `label="i++"`)
	assert.Contains(t, s, "doublecircle")
	assert.Contains(t, s, `"entry (0)"`)
}

func TestAutomaton(t *testing.T) {
	a := automaton.New[int, ints.Stmt]()
	x := a.AddState("")
	_, err := a.AddTransition(a.Initial(), x, "go")
	require.NoError(t, err)

	out, err := dot.Automaton(a, "A")
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `label="initial"`)
	assert.Contains(t, s, `label="s2"`)
	assert.Contains(t, s, `label="go"`)
}
