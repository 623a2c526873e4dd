// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for tracefold/core.
//
// Purpose:
//   - Provide small deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only.

package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/tracefold/core"
)

// Common labels used across core tests.
const (
	LabelA = "a"
	LabelB = "b"
	LabelC = "c"
)

// testGraph is the graph shape used by most tests: string payloads, string labels.
type testGraph = core.Graph[string, string]

// NewGraphFull RETURNS a graph with loops, multi-edges, payload concatenation
// and label dedup enabled, i.e. the configuration automata are built on.
func NewGraphFull() *testGraph {
	return core.NewGraph(
		core.WithLoops[string, string](),
		core.WithMultiEdges[string, string](),
		core.WithNodeMerge[string, string](func(into, from string) string { return into + "+" + from }),
		core.WithLabelDedup[string, string](func(a, b string) bool { return a == b }),
	)
}

// snapshot is a comparable picture of the whole graph state.
type snapshot struct {
	Nodes    []core.NodeID
	Payloads map[core.NodeID]string
	Edges    []core.Edge[string]
}

// Snapshot CAPTURES nodes, payloads and edges of g.
func Snapshot(t *testing.T, g *testGraph) snapshot {
	t.Helper()
	s := snapshot{Nodes: g.Nodes(), Payloads: map[core.NodeID]string{}, Edges: g.Edges()}
	for _, id := range s.Nodes {
		p, err := g.Node(id)
		MustNoError(t, err, "Node")
		s.Payloads[id] = p
	}

	return s
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs FAILS the test unless errors.Is(err, want).
func MustErrorIs(t *testing.T, err, want error, op string) {
	t.Helper()
	if !errors.Is(err, want) {
		t.Fatalf("%s: want error %v, got %v", op, want, err)
	}
}

// MustEqual FAILS the test unless got and want are deeply equal.
func MustEqual(t *testing.T, got, want any, op string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s: got %v, want %v", op, got, want)
	}
}

// MustAddEdge ADDS an edge or fails the test.
func MustAddEdge(t *testing.T, g *testGraph, from, to core.NodeID, label string) core.EdgeID {
	t.Helper()
	eid, err := g.AddEdge(from, to, label)
	MustNoError(t, err, "AddEdge")

	return eid
}
