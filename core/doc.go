// Package core provides the labeled multigraph that every tracefold automaton
// is built on, together with an undo journal that makes node merges
// speculative.
//
// The Graph G = (V, E) is an arena of nodes addressed by stable NodeID
// indices. Each node carries a payload N and each edge carries a label L.
// Parallel edges and self-loops are opt-in:
//
//   - WithLoops()              – permit from == to
//   - WithMultiEdges()         – permit several edges between the same pair
//   - WithNodeMerge(fn)        – combine payloads when one node absorbs another
//   - WithLabelDedup(eq)       – collapse parallel edges with equal labels on merge
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(payload N) NodeID              // O(1)
//	HasNode(id NodeID) bool                // O(1)
//	Node(id) (N, error) / SetNode(id, N)   // O(1)
//	Nodes() []NodeID                       // O(V), ascending
//
//	// Edge lifecycle
//	AddEdge(from, to NodeID, label L) (EdgeID, error)
//	RemoveEdge(eid EdgeID) error
//	SetLabel(eid EdgeID, label L) error
//	SuccEdges(id) / PredEdges(id)          // O(d·log d), sorted by EdgeID
//
//	// Merging
//	MergeInto(src, dst NodeID) error       // redirect src's edges to dst, tombstone src
//
// Tombstoned nodes keep their arena slot so that a revert can resurrect them
// under the same NodeID.
//
// Transactions:
//
//	Begin()   – open a journal (transactions are not nested: ErrTxActive)
//	Commit()  – drop the journal, keep every change
//	Revert()  – replay the journal backwards; the graph is restored exactly,
//	            including node payloads, edge labels and the edge-ID counter
//
// Determinism:
//
//	Nodes(), Edges(), SuccEdges() and PredEdges() return results sorted by ID,
//	and edge IDs are monotonic, so identical call sequences produce identical
//	graphs.
//
// Concurrency:
//
//	A single sync.RWMutex guards the catalog, so individual calls are safe,
//	but a transaction is a multi-call protocol owned by one caller. Do not
//	share a graph that has an open transaction.
//
// Errors:
//
//	ErrNodeNotFound        – unknown or tombstoned node
//	ErrEdgeNotFound        – unknown edge
//	ErrLoopNotAllowed      – self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are disabled
//	ErrTxActive            – Begin while a transaction is open
//	ErrNoTx                – Commit/Revert without an open transaction
package core
