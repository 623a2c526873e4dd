// Package dot renders tracefold graphs in Graphviz DOT through gonum's
// multigraph encoder, so parallel edges are kept.
package dot

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	gdot "gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/katalvlaran/tracefold/automaton"
	"github.com/katalvlaran/tracefold/cfg"
	"github.com/katalvlaran/tracefold/core"
)

// NodeFunc renders a node as a label and an optional Graphviz shape.
type NodeFunc[N any] func(id core.NodeID, payload N) (label, shape string)

// node adapts a core node to gonum.
type node struct {
	id    int64
	label string
	shape string
}

func (n node) ID() int64     { return n.id }
func (n node) DOTID() string { return "n" + strconv.FormatInt(n.id, 10) }
func (n node) Attributes() []encoding.Attribute {
	attrs := []encoding.Attribute{{Key: "label", Value: strconv.Quote(n.label)}}
	if n.shape != "" {
		attrs = append(attrs, encoding.Attribute{Key: "shape", Value: n.shape})
	}
	return attrs
}

// line adapts a core edge to gonum.
type line struct {
	from, to node
	id       int64
	label    string
}

func (l line) From() graph.Node         { return l.from }
func (l line) To() graph.Node           { return l.to }
func (l line) ID() int64                { return l.id }
func (l line) ReversedLine() graph.Line { return line{from: l.to, to: l.from, id: l.id, label: l.label} }
func (l line) Attributes() []encoding.Attribute {
	return []encoding.Attribute{{Key: "label", Value: strconv.Quote(l.label)}}
}

// Marshal renders every live node and edge of g as a DOT digraph.
func Marshal[N, L any](g *core.Graph[N, L], name string, nodeFn NodeFunc[N], edgeFn func(L) string) ([]byte, error) {
	mg := multi.NewDirectedGraph()
	nodes := make(map[core.NodeID]node)
	for _, id := range g.Nodes() {
		p, err := g.Node(id)
		if err != nil {
			return nil, err
		}
		label, shape := nodeFn(id, p)
		n := node{id: int64(id), label: label, shape: shape}
		nodes[id] = n
		mg.AddNode(n)
	}
	for _, e := range g.Edges() {
		mg.SetLine(line{from: nodes[e.From], to: nodes[e.To], id: int64(e.ID), label: edgeFn(e.Label)})
	}

	out, err := gdot.MarshalMulti(mg, name, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("dot: %w", err)
	}

	return out, nil
}

// CFG renders a control-flow graph. Nodes show their path length and point
// count; edges show the action and guard.
func CFG[V any, A cfg.Action, G any](c *cfg.CFG[V, A, G], name string) ([]byte, error) {
	return Marshal(c.Graph(), name,
		func(id core.NodeID, s cfg.State[V, A]) (string, string) {
			switch id {
			case c.Entry():
				return fmt.Sprintf("entry (%d)", len(s.Points)), "box"
			case c.Exit():
				return fmt.Sprintf("exit (%d)", len(s.Points)), "doublecircle"
			default:
				return fmt.Sprintf("n%d (%d)", id, len(s.Points)), ""
			}
		},
		cfg.Transition[A, G].String,
	)
}

// Automaton renders an automaton. Unnamed states are shown as s<ID>.
func Automaton[V any, U automaton.Update](a *automaton.Automaton[V, U], name string) ([]byte, error) {
	return Marshal(a.Graph(), name,
		func(id core.NodeID, s automaton.State[V]) (string, string) {
			label := s.Name
			if label == "" {
				label = fmt.Sprintf("s%d", id)
			}
			if id == a.Final() {
				return label, "doublecircle"
			}
			return label, ""
		},
		U.String,
	)
}
