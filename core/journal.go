// SPDX-License-Identifier: MIT
//
// File: journal.go
// Role: Speculative edits. Begin opens an undo journal, Commit discards it,
//       Revert replays it backwards to restore the pre-transaction graph.
// Determinism:
//   - Revert restores the edge-ID counter, so a reverted attempt leaves no
//     trace in IDs handed out later.
// Concurrency:
//   - All three calls take the mu write lock; the transaction itself is a
//     protocol owned by a single caller.

package core

// opKind tags one journal entry.
type opKind uint8

const (
	opSetNode    opKind = iota + 1 // payload overwritten; undo restores payload
	opKillNode                     // node tombstoned; undo revives it
	opAddEdge                      // edge created; undo unlinks it
	opRemoveEdge                   // edge deleted; undo relinks the saved copy
	opRetarget                     // endpoints changed; undo restores From/To
	opSetLabel                     // label overwritten; undo restores Label
)

// undo is one inverse operation. edge holds the pre-change copy.
type undo[N, L any] struct {
	kind    opKind
	node    NodeID
	payload N
	edge    Edge[L]
}

// journal is the undo log of the open transaction plus the counters that
// are cheaper to snapshot than to journal.
type journal[N, L any] struct {
	entries    []undo[N, L]
	arenaLen   int
	live       int
	nextEdgeID EdgeID
}

func (j *journal[N, L]) record(u undo[N, L]) {
	j.entries = append(j.entries, u)
}

// Begin opens a transaction. Every mutation until Commit or Revert is
// journaled. Returns ErrTxActive if a transaction is already open.
// Complexity: O(1).
func (g *Graph[N, L]) Begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.tx != nil {
		return ErrTxActive
	}
	g.tx = &journal[N, L]{
		arenaLen:   len(g.nodes),
		live:       g.live,
		nextEdgeID: g.nextEdgeID,
	}

	return nil
}

// InTx reports whether a transaction is open.
func (g *Graph[N, L]) InTx() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.tx != nil
}

// Commit keeps every change made since Begin and closes the transaction.
// Returns ErrNoTx when no transaction is open.
// Complexity: O(1).
func (g *Graph[N, L]) Commit() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.tx == nil {
		return ErrNoTx
	}
	g.tx = nil

	return nil
}

// Revert undoes every change made since Begin and closes the transaction.
// Absorbed nodes come back under their original IDs with their original
// payloads and edges. Returns ErrNoTx when no transaction is open.
// Complexity: O(J) where J is the number of journal entries.
func (g *Graph[N, L]) Revert() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.tx == nil {
		return ErrNoTx
	}
	j := g.tx
	g.tx = nil // replay must not journal itself

	for i := len(j.entries) - 1; i >= 0; i-- {
		u := j.entries[i]
		switch u.kind {
		case opSetNode:
			g.nodes[u.node].payload = u.payload
		case opKillNode:
			g.nodes[u.node].alive = true
		case opAddEdge:
			if e, ok := g.edges[u.edge.ID]; ok {
				g.unlink(e)
			}
		case opRemoveEdge:
			e := u.edge
			g.link(&e)
		case opRetarget:
			if e, ok := g.edges[u.edge.ID]; ok {
				g.move(e, u.edge.From, u.edge.To)
			}
		case opSetLabel:
			if e, ok := g.edges[u.edge.ID]; ok {
				e.Label = u.edge.Label
			}
		}
	}

	// Nodes created inside the transaction have no edges left; drop their slots.
	var zero slot[N]
	for i := j.arenaLen; i < len(g.nodes); i++ {
		g.nodes[i] = zero
	}
	g.nodes = g.nodes[:j.arenaLen]
	g.live = j.live
	g.nextEdgeID = j.nextEdgeID

	return nil
}
