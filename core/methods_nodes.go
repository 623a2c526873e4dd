// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/HasNode/Node/SetNode/Nodes/NodeCount.
// Determinism:
//   - Nodes() returns live node IDs in ascending order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddNode appends a new live node carrying payload and returns its ID.
// Complexity: O(1) amortized.
func (g *Graph[N, L]) AddNode(payload N) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, slot[N]{payload: payload, alive: true})
	g.live++
	// Arena growth is undone by truncation on Revert, so no journal entry.

	return id
}

// HasNode reports whether id names a live node.
// Complexity: O(1).
func (g *Graph[N, L]) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.alive(id)
}

// Node returns the payload of a live node.
// Returns ErrNodeNotFound for unknown or absorbed nodes.
func (g *Graph[N, L]) Node(id NodeID) (N, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.alive(id) {
		var zero N
		return zero, ErrNodeNotFound
	}

	return g.nodes[id].payload, nil
}

// SetNode replaces the payload of a live node. Inside a transaction the old
// payload is journaled.
func (g *Graph[N, L]) SetNode(id NodeID, payload N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.alive(id) {
		return ErrNodeNotFound
	}
	g.setPayload(id, payload)

	return nil
}

// Nodes returns all live node IDs in ascending order.
// Complexity: O(V) over the arena.
func (g *Graph[N, L]) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, 0, g.live)
	for i := range g.nodes {
		if g.nodes[i].alive {
			ids = append(ids, NodeID(i))
		}
	}

	return ids
}

// NodeCount returns the number of live nodes. O(1).
func (g *Graph[N, L]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.live
}

// alive reports liveness without locking.
func (g *Graph[N, L]) alive(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes) && g.nodes[id].alive
}

// setPayload writes a payload without locking, journaling the old value.
func (g *Graph[N, L]) setPayload(id NodeID, payload N) {
	if g.tx != nil {
		g.tx.record(undo[N, L]{kind: opSetNode, node: id, payload: g.nodes[id].payload})
	}
	g.nodes[id].payload = payload
}
