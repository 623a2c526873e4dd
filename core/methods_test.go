// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/katalvlaran/tracefold/core"
)

// TestGraph_NodeLifecycle VERIFIES AddNode/HasNode/Node/SetNode/Nodes.
func TestGraph_NodeLifecycle(t *testing.T) {
	g := core.NewGraph[string, string]()

	a := g.AddNode("A")
	b := g.AddNode("B")
	MustEqual(t, g.Nodes(), []core.NodeID{a, b}, "Nodes")
	MustEqual(t, g.NodeCount(), 2, "NodeCount")
	MustEqual(t, g.HasNode(a), true, "HasNode(a)")
	MustEqual(t, g.HasNode(core.NodeID(7)), false, "HasNode(unknown)")

	MustNoError(t, g.SetNode(a, "A2"), "SetNode")
	p, err := g.Node(a)
	MustNoError(t, err, "Node")
	MustEqual(t, p, "A2", "payload after SetNode")

	_, err = g.Node(core.NodeID(-1))
	MustErrorIs(t, err, core.ErrNodeNotFound, "Node(-1)")
	MustErrorIs(t, g.SetNode(core.NodeID(9), "x"), core.ErrNodeNotFound, "SetNode(unknown)")
}

// TestGraph_EdgeConstraints VERIFIES loop and multi-edge policy enforcement.
func TestGraph_EdgeConstraints(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, b := g.AddNode("A"), g.AddNode("B")

	_, err := g.AddEdge(a, a, LabelA)
	MustErrorIs(t, err, core.ErrLoopNotAllowed, "AddEdge(a,a) without loops")

	MustAddEdge(t, g, a, b, LabelA)
	_, err = g.AddEdge(a, b, LabelB)
	MustErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "parallel AddEdge without multi-edges")

	_, err = g.AddEdge(a, core.NodeID(5), LabelA)
	MustErrorIs(t, err, core.ErrNodeNotFound, "AddEdge to unknown node")

	full := NewGraphFull()
	x := full.AddNode("X")
	e1 := MustAddEdge(t, full, x, x, LabelA)
	e2 := MustAddEdge(t, full, x, x, LabelA)
	if e1 == e2 {
		t.Fatalf("parallel edges must get distinct IDs, both %d", e1)
	}
	MustEqual(t, full.EdgeCount(), 2, "EdgeCount")
}

// TestGraph_AdjacencyOrder VERIFIES SuccEdges/PredEdges/Successors ordering.
func TestGraph_AdjacencyOrder(t *testing.T) {
	g := NewGraphFull()
	a, b, c := g.AddNode("A"), g.AddNode("B"), g.AddNode("C")
	e1 := MustAddEdge(t, g, a, c, LabelC)
	e2 := MustAddEdge(t, g, a, b, LabelB)
	e3 := MustAddEdge(t, g, a, c, LabelA)

	succ, err := g.SuccEdges(a)
	MustNoError(t, err, "SuccEdges")
	MustEqual(t, []core.EdgeID{succ[0].ID, succ[1].ID, succ[2].ID}, []core.EdgeID{e1, e2, e3}, "SuccEdges order")

	ids, err := g.Successors(a)
	MustNoError(t, err, "Successors")
	MustEqual(t, ids, []core.NodeID{b, c}, "Successors")

	pred, err := g.PredEdges(c)
	MustNoError(t, err, "PredEdges")
	MustEqual(t, len(pred), 2, "PredEdges(c)")

	deg, err := g.OutDegree(a)
	MustNoError(t, err, "OutDegree")
	MustEqual(t, deg, 3, "OutDegree counts parallel edges")

	MustNoError(t, g.RemoveEdge(e1), "RemoveEdge")
	MustErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound, "RemoveEdge twice")
	MustNoError(t, g.SetLabel(e3, LabelB), "SetLabel")
	e, err := g.Edge(e3)
	MustNoError(t, err, "Edge")
	MustEqual(t, e.Label, LabelB, "label after SetLabel")
}

// TestGraph_MergeInto VERIFIES edge redirection, self-loops, dedup and payload merge.
func TestGraph_MergeInto(t *testing.T) {
	g := NewGraphFull()
	p, x, y, s := g.AddNode("P"), g.AddNode("X"), g.AddNode("Y"), g.AddNode("S")
	MustAddEdge(t, g, p, x, LabelA)
	MustAddEdge(t, g, p, y, LabelA) // becomes a duplicate of p→y after merge
	MustAddEdge(t, g, x, s, LabelB)
	MustAddEdge(t, g, x, x, LabelC) // self-loop follows the survivor

	MustNoError(t, g.MergeInto(x, y), "MergeInto(x,y)")

	MustEqual(t, g.HasNode(x), false, "absorbed node is gone")
	payload, _ := g.Node(y)
	MustEqual(t, payload, "Y+X", "payload merge order")

	succ, _ := g.SuccEdges(p)
	MustEqual(t, len(succ), 1, "duplicate p→y collapsed")
	MustEqual(t, succ[0].To, y, "p edge redirected")

	ys, _ := g.SuccEdges(y)
	MustEqual(t, len(ys), 2, "y inherits out-edges")
	MustEqual(t, ys[0].To, s, "x→s became y→s")
	MustEqual(t, ys[1].From, y, "self-loop source")
	MustEqual(t, ys[1].To, y, "self-loop destination")

	MustNoError(t, g.MergeInto(y, y), "self merge is a no-op")
	MustErrorIs(t, g.MergeInto(x, y), core.ErrNodeNotFound, "merging an absorbed node")
}

// TestGraph_MergePolicy VERIFIES that a merge violating graph policy leaves the graph untouched.
func TestGraph_MergePolicy(t *testing.T) {
	g := core.NewGraph[string, string]()
	a, b := g.AddNode("A"), g.AddNode("B")
	MustAddEdge(t, g, a, b, LabelA)
	before := Snapshot(t, g)

	MustErrorIs(t, g.MergeInto(b, a), core.ErrLoopNotAllowed, "merge creating a loop")
	MustEqual(t, Snapshot(t, g), before, "graph after rejected merge")

	m := core.NewGraph(core.WithLoops[string, string]())
	r, u, v := m.AddNode("R"), m.AddNode("U"), m.AddNode("V")
	MustAddEdge(t, m, r, u, LabelA)
	MustAddEdge(t, m, r, v, LabelB)
	MustErrorIs(t, m.MergeInto(u, v), core.ErrMultiEdgeNotAllowed, "merge creating parallel edges")
}

// TestGraph_Clone VERIFIES that Clone is independent of the source.
func TestGraph_Clone(t *testing.T) {
	g := NewGraphFull()
	a, b := g.AddNode("A"), g.AddNode("B")
	MustAddEdge(t, g, a, b, LabelA)

	c := g.Clone()
	MustEqual(t, Snapshot(t, c), Snapshot(t, g), "clone equals source")

	MustNoError(t, g.MergeInto(b, a), "merge in source")
	MustEqual(t, c.HasNode(b), true, "clone unaffected by source merge")
	MustEqual(t, c.EdgeCount(), 1, "clone edge count")
}
