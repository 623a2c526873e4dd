// SPDX-License-Identifier: MIT
//
// File: cfg.go
// Role: CFG construction and queries.
// Determinism:
//   - Every query returns nodes ascending and edges by EdgeID.
// AI-HINT (file):
//   - Mutating helpers copy State slices before SetNode so journaled
//     payloads stay intact for RevertMerges.

package cfg

import (
	"github.com/katalvlaran/tracefold/bfs"
	"github.com/katalvlaran/tracefold/core"
)

// Edge is an edge of a CFG.
type Edge[A Action, G any] = core.Edge[Transition[A, G]]

// CFG is a control-flow graph with fixed Entry and Exit nodes.
type CFG[V any, A Action, G any] struct {
	g     *core.Graph[State[V, A], Transition[A, G]]
	entry core.NodeID
	exit  core.NodeID
}

// New returns a CFG holding only Entry and Exit.
func New[V any, A Action, G any]() *CFG[V, A, G] {
	g := core.NewGraph(
		core.WithLoops[State[V, A], Transition[A, G]](),
		core.WithMultiEdges[State[V, A], Transition[A, G]](),
		core.WithNodeMerge[State[V, A], Transition[A, G]](mergeStates[V, A]),
		core.WithLabelDedup[State[V, A]](sameAction[A, G]),
	)
	c := &CFG[V, A, G]{g: g}
	c.entry = g.AddNode(State[V, A]{Path: []A{}})
	c.exit = g.AddNode(State[V, A]{Path: []A{}})

	return c
}

// Entry returns the initial node.
func (c *CFG[V, A, G]) Entry() core.NodeID { return c.entry }

// Exit returns the final node.
func (c *CFG[V, A, G]) Exit() core.NodeID { return c.exit }

// Graph exposes the underlying graph for read-only consumers such as exporters.
func (c *CFG[V, A, G]) Graph() *core.Graph[State[V, A], Transition[A, G]] { return c.g }

// AddNode creates a node with no points and a copy of path.
func (c *CFG[V, A, G]) AddNode(path []A) core.NodeID {
	p := make([]A, len(path))
	copy(p, path)

	return c.g.AddNode(State[V, A]{Path: p})
}

// AddEdge adds an unguarded edge from → to labeled with action.
func (c *CFG[V, A, G]) AddEdge(from, to core.NodeID, action A) (core.EdgeID, error) {
	return c.g.AddEdge(from, to, Transition[A, G]{Action: action})
}

// AddPoint records an observation at node.
func (c *CFG[V, A, G]) AddPoint(node core.NodeID, p TracePoint[V, A]) error {
	s, err := c.g.Node(node)
	if err != nil {
		return err
	}
	pts := make([]TracePoint[V, A], len(s.Points), len(s.Points)+1)
	copy(pts, s.Points)
	s.Points = append(pts, p)

	return c.g.SetNode(node, s)
}

// State returns the payload of node. Callers must not modify the slices.
func (c *CFG[V, A, G]) State(node core.NodeID) (State[V, A], error) {
	return c.g.Node(node)
}

// Path returns a copy of node's canonical path.
func (c *CFG[V, A, G]) Path(node core.NodeID) ([]A, error) {
	s, err := c.g.Node(node)
	if err != nil {
		return nil, err
	}
	p := make([]A, len(s.Path))
	copy(p, s.Path)

	return p, nil
}

// Contains reports whether node is live.
func (c *CFG[V, A, G]) Contains(node core.NodeID) bool { return c.g.HasNode(node) }

// Nodes returns the live nodes ascending.
func (c *CFG[V, A, G]) Nodes() []core.NodeID { return c.g.Nodes() }

// NodeCount returns the number of live nodes.
func (c *CFG[V, A, G]) NodeCount() int { return c.g.NodeCount() }

// EdgeCount returns the number of edges.
func (c *CFG[V, A, G]) EdgeCount() int { return c.g.EdgeCount() }

// SuccEdges returns node's out-edges by EdgeID.
func (c *CFG[V, A, G]) SuccEdges(node core.NodeID) ([]Edge[A, G], error) {
	return c.g.SuccEdges(node)
}

// OutDegree returns the number of out-edges of node.
func (c *CFG[V, A, G]) OutDegree(node core.NodeID) (int, error) {
	return c.g.OutDegree(node)
}

// FindSucc returns the target of node's first out-edge labeled action.
func (c *CFG[V, A, G]) FindSucc(node core.NodeID, action A) (core.NodeID, bool, error) {
	edges, err := c.g.SuccEdges(node)
	if err != nil {
		return 0, false, err
	}
	for _, e := range edges {
		if e.Label.Action == action {
			return e.To, true, nil
		}
	}

	return 0, false, nil
}

// HasEdge reports whether from has an out-edge labeled action to to.
func (c *CFG[V, A, G]) HasEdge(from, to core.NodeID, action A) bool {
	edges, err := c.g.SuccEdges(from)
	if err != nil {
		return false
	}
	for _, e := range edges {
		if e.To == to && e.Label.Action == action {
			return true
		}
	}

	return false
}

// Unreachable returns the live nodes not reachable from Entry, ascending.
func (c *CFG[V, A, G]) Unreachable() []core.NodeID {
	res, err := bfs.BFS(c.g, c.entry)
	if err != nil {
		return nil
	}
	var out []core.NodeID
	for _, id := range c.g.Nodes() {
		if !res.Reached(id) {
			out = append(out, id)
		}
	}

	return out
}
