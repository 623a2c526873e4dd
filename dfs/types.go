// Package dfs defines the visitation states, errors and result type for
// depth-first search over a core.Graph.
package dfs

import (
	"errors"

	"github.com/katalvlaran/tracefold/core"
)

// Node visitation states.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack.
	Black        // Black: the node and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS or BackEdges.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node is not live.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// DFSResult holds the outcome of a traversal from one root.
//   - Order: nodes in post-order (a node after all its descendants).
//   - Depth: recursion depth at which each node was discovered.
//   - Parent: DFS-tree predecessor of every non-root node.
type DFSResult struct {
	Order  []core.NodeID
	Depth  map[core.NodeID]int
	Parent map[core.NodeID]core.NodeID
}
