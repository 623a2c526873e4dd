// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copies. Clone duplicates configuration, arena and edges; the
//       journal of an open transaction is not carried over.

package core

// Clone returns a copy of g with the same node IDs, edge IDs, labels and
// payloads. Payloads and labels are copied by value; reference types inside
// them are shared.
// Complexity: O(V + E).
func (g *Graph[N, L]) Clone() *Graph[N, L] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph[N, L]{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		mergeNode:  g.mergeNode,
		sameLabel:  g.sameLabel,
		nodes:      make([]slot[N], len(g.nodes)),
		live:       g.live,
		nextEdgeID: g.nextEdgeID,
		edges:      make(map[EdgeID]*Edge[L], len(g.edges)),
		out:        make(map[NodeID]map[EdgeID]struct{}, len(g.out)),
		in:         make(map[NodeID]map[EdgeID]struct{}, len(g.in)),
	}
	copy(clone.nodes, g.nodes)
	for _, e := range g.edges {
		ne := *e
		clone.link(&ne)
	}

	return clone
}
