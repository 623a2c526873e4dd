package bfs

import (
	"errors"

	"github.com/katalvlaran/tracefold/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start node is absent or absorbed.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")
)

// BFSResult holds the outcome of a traversal: the visit sequence and the
// distance in edges of every reached node from the start.
type BFSResult struct {
	Order []core.NodeID
	Depth map[core.NodeID]int
}

// Reached reports whether id was visited.
func (r *BFSResult) Reached(id core.NodeID) bool {
	_, ok := r.Depth[id]
	return ok
}
