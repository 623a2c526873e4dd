// Package dfs implements depth-first search on a tracefold core.Graph.
// Edges are followed in their direction and in EdgeID order, so traversal
// order is deterministic. BackEdges reports the edges that close cycles,
// which is how callers count the loops of a learned automaton.
//
// Complexity:
//
//   - Time:   O(V + E·log d) (successor lists are sorted)
//   - Memory: O(V) for the recursion stack and state maps.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/tracefold/core"
)

// walker encapsulates state during DFS.
type walker[N, L any] struct {
	graph *core.Graph[N, L]
	state map[core.NodeID]int
	res   *DFSResult
	back  []core.Edge[L]
}

// DFS performs depth-first search on g from start and returns the post-order.
func DFS[N, L any](g *core.Graph[N, L], start core.NodeID) (*DFSResult, error) {
	w, err := run(g, start)
	if err != nil {
		return nil, err
	}

	return w.res, nil
}

// run validates the input and walks the tree rooted at start.
func run[N, L any](g *core.Graph[N, L], start core.NodeID) (*walker[N, L], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}
	n := g.NodeCount()
	w := &walker[N, L]{
		graph: g,
		state: make(map[core.NodeID]int, n),
		res: &DFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}
	if err := w.visit(start, 0); err != nil {
		return nil, fmt.Errorf("dfs: %w", err)
	}

	return w, nil
}

// visit colors id Gray, explores its out-edges and colors it Black.
func (w *walker[N, L]) visit(id core.NodeID, depth int) error {
	w.state[id] = Gray
	w.res.Depth[id] = depth

	edges, err := w.graph.SuccEdges(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		switch w.state[e.To] {
		case White:
			w.res.Parent[e.To] = id
			if err := w.visit(e.To, depth+1); err != nil {
				return err
			}
		case Gray:
			// e points back into the recursion stack: it closes a cycle.
			w.back = append(w.back, e)
		}
	}

	w.state[id] = Black
	w.res.Order = append(w.res.Order, id)

	return nil
}
