// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/Edge/SetLabel/Edges/EdgeCount,
//       adjacency queries SuccEdges/PredEdges/OutDegree/Successors.
// Determinism:
//   - Every edge listing is sorted by EdgeID asc.
//   - nextEdgeID is monotonic; Revert restores it.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddEdge creates a new edge from → to carrying label and returns its ID.
//
// Steps:
//  1. Validate endpoints are live.
//  2. Enforce loop and multi-edge policy.
//  3. Allocate the next EdgeID, store, link adjacency, journal.
//
// Complexity: O(1) amortized (O(d) for the multi-edge check).
func (g *Graph[N, L]) AddEdge(from, to NodeID, label L) (EdgeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.alive(from) || !g.alive(to) {
		return 0, ErrNodeNotFound
	}
	if from == to && !g.allowLoops {
		return 0, ErrLoopNotAllowed
	}
	if !g.allowMulti && g.hasEdgeLocked(from, to, 0) {
		return 0, ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge[L]{ID: g.nextEdgeID, From: from, To: to, Label: label}
	g.link(e)
	if g.tx != nil {
		g.tx.record(undo[N, L]{kind: opAddEdge, edge: *e})
	}

	return e.ID, nil
}

// RemoveEdge deletes one edge. Returns ErrEdgeNotFound if it does not exist.
// Complexity: O(1).
func (g *Graph[N, L]) RemoveEdge(eid EdgeID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	g.dropEdge(e)

	return nil
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph[N, L]) Edge(eid EdgeID) (Edge[L], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return Edge[L]{}, ErrEdgeNotFound
	}

	return *e, nil
}

// SetLabel replaces the label of an existing edge. Inside a transaction the
// old label is journaled.
func (g *Graph[N, L]) SetLabel(eid EdgeID, label L) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	if g.tx != nil {
		g.tx.record(undo[N, L]{kind: opSetLabel, edge: *e})
	}
	e.Label = label

	return nil
}

// Edges returns copies of all edges sorted by ID.
// Complexity: O(E·log E).
func (g *Graph[N, L]) Edges() []Edge[L] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[L], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph[N, L]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// SuccEdges returns copies of the edges leaving id, sorted by EdgeID.
// Complexity: O(d·log d).
func (g *Graph[N, L]) SuccEdges(id NodeID) ([]Edge[L], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.alive(id) {
		return nil, ErrNodeNotFound
	}

	return g.collect(g.out[id]), nil
}

// PredEdges returns copies of the edges entering id, sorted by EdgeID.
// Complexity: O(d·log d).
func (g *Graph[N, L]) PredEdges(id NodeID) ([]Edge[L], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.alive(id) {
		return nil, ErrNodeNotFound
	}

	return g.collect(g.in[id]), nil
}

// OutDegree counts the edges leaving id, parallel edges included.
func (g *Graph[N, L]) OutDegree(id NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.alive(id) {
		return 0, ErrNodeNotFound
	}

	return len(g.out[id]), nil
}

// Successors returns the distinct destinations of the edges leaving id,
// sorted ascending.
func (g *Graph[N, L]) Successors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.alive(id) {
		return nil, ErrNodeNotFound
	}
	seen := make(map[NodeID]struct{}, len(g.out[id]))
	ids := make([]NodeID, 0, len(g.out[id]))
	for eid := range g.out[id] {
		to := g.edges[eid].To
		if _, dup := seen[to]; dup {
			continue
		}
		seen[to] = struct{}{}
		ids = append(ids, to)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids, nil
}

// Internal helper methods (callers hold mu):
////////////////////

// collect copies the edges of an adjacency set in ID order.
func (g *Graph[N, L]) collect(set map[EdgeID]struct{}) []Edge[L] {
	out := make([]Edge[L], 0, len(set))
	for eid := range set {
		out = append(out, *g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// hasEdgeLocked reports whether an edge from → to other than skip exists.
func (g *Graph[N, L]) hasEdgeLocked(from, to NodeID, skip EdgeID) bool {
	for eid := range g.out[from] {
		if eid != skip && g.edges[eid].To == to {
			return true
		}
	}

	return false
}

// link stores e and registers it in both adjacency sets.
func (g *Graph[N, L]) link(e *Edge[L]) {
	g.edges[e.ID] = e
	ensureSet(g.out, e.From)[e.ID] = struct{}{}
	ensureSet(g.in, e.To)[e.ID] = struct{}{}
}

// unlink removes e from the catalog and both adjacency sets.
func (g *Graph[N, L]) unlink(e *Edge[L]) {
	delete(g.edges, e.ID)
	removeFromSet(g.out, e.From, e.ID)
	removeFromSet(g.in, e.To, e.ID)
}

// dropEdge unlinks e and journals the removal.
func (g *Graph[N, L]) dropEdge(e *Edge[L]) {
	if g.tx != nil {
		g.tx.record(undo[N, L]{kind: opRemoveEdge, edge: *e})
	}
	g.unlink(e)
}

// retarget moves e to new endpoints and journals the old ones.
func (g *Graph[N, L]) retarget(e *Edge[L], from, to NodeID) {
	if g.tx != nil {
		g.tx.record(undo[N, L]{kind: opRetarget, edge: *e})
	}
	g.move(e, from, to)
}

// move rewires the adjacency sets of e to new endpoints.
func (g *Graph[N, L]) move(e *Edge[L], from, to NodeID) {
	removeFromSet(g.out, e.From, e.ID)
	removeFromSet(g.in, e.To, e.ID)
	e.From, e.To = from, to
	ensureSet(g.out, from)[e.ID] = struct{}{}
	ensureSet(g.in, to)[e.ID] = struct{}{}
}

// ensureSet makes m[id] non-nil and returns it.
func ensureSet(m map[NodeID]map[EdgeID]struct{}, id NodeID) map[EdgeID]struct{} {
	set, ok := m[id]
	if !ok {
		set = make(map[EdgeID]struct{})
		m[id] = set
	}

	return set
}

// removeFromSet deletes eid from m[id], dropping the bucket when empty.
func removeFromSet(m map[NodeID]map[EdgeID]struct{}, id NodeID, eid EdgeID) {
	if set := m[id]; set != nil {
		delete(set, eid)
		if len(set) == 0 {
			delete(m, id)
		}
	}
}
