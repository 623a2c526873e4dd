// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, options, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards the arena, the edge catalog, the adjacency sets and the journal.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an unknown or absorbed node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrTxActive indicates Begin was called while a transaction is already open.
	ErrTxActive = errors.New("core: transaction already open")

	// ErrNoTx indicates Commit or Revert was called without an open transaction.
	ErrNoTx = errors.New("core: no open transaction")
)

// NodeID addresses a node slot in the arena. IDs are never reused.
type NodeID int

// EdgeID uniquely identifies an edge. IDs grow monotonically.
type EdgeID uint64

// Edge is a labeled connection From → To. Queries return copies.
type Edge[L any] struct {
	// ID uniquely identifies this edge in the Graph.
	ID EdgeID

	// From is the source node.
	From NodeID

	// To is the destination node.
	To NodeID

	// Label is the caller-defined edge payload.
	Label L
}

// Option configures a Graph before creation.
type Option[N, L any] func(g *Graph[N, L])

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops[N, L any]() Option[N, L] {
	return func(g *Graph[N, L]) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges[N, L any]() Option[N, L] {
	return func(g *Graph[N, L]) { g.allowMulti = true }
}

// WithNodeMerge sets the payload combiner used by MergeInto. The function
// receives the surviving payload first and must not mutate either argument
// in place: the old payloads are kept in the journal.
// Without it the surviving payload is left untouched.
func WithNodeMerge[N, L any](fn func(into, from N) N) Option[N, L] {
	return func(g *Graph[N, L]) { g.mergeNode = fn }
}

// WithLabelDedup makes MergeInto drop a redirected edge when the survivor
// already has an edge with the same endpoints and an equal label.
func WithLabelDedup[N, L any](eq func(a, b L) bool) Option[N, L] {
	return func(g *Graph[N, L]) { g.sameLabel = eq }
}

// slot is one arena cell. Absorbed nodes stay in the arena with alive=false.
type slot[N any] struct {
	payload N
	alive   bool
}

// Graph is a directed labeled multigraph over an arena of nodes.
//
// out[n] and in[n] hold the IDs of edges leaving and entering n.
// tx is non-nil while a transaction is open.
type Graph[N, L any] struct {
	mu sync.RWMutex

	// Configuration
	allowLoops bool
	allowMulti bool
	mergeNode  func(into, from N) N
	sameLabel  func(a, b L) bool

	// Storage
	nodes      []slot[N]
	live       int
	nextEdgeID EdgeID
	edges      map[EdgeID]*Edge[L]
	out        map[NodeID]map[EdgeID]struct{}
	in         map[NodeID]map[EdgeID]struct{}

	tx *journal[N, L]
}

// NewGraph creates an empty Graph. By default loops and parallel edges are
// rejected and merges keep the surviving payload.
// Complexity: O(len(opts)).
func NewGraph[N, L any](opts ...Option[N, L]) *Graph[N, L] {
	g := &Graph[N, L]{
		edges: make(map[EdgeID]*Edge[L]),
		out:   make(map[NodeID]map[EdgeID]struct{}),
		in:    make(map[NodeID]map[EdgeID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are permitted.
func (g *Graph[N, L]) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph[N, L]) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}
