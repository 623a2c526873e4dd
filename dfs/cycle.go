package dfs

import "github.com/katalvlaran/tracefold/core"

// BackEdges returns, in discovery order, the edges reachable from start that
// point to a node still on the DFS stack. Self-loops are back edges.
// A graph reachable from start is acyclic iff the result is empty.
func BackEdges[N, L any](g *core.Graph[N, L], start core.NodeID) ([]core.Edge[L], error) {
	w, err := run(g, start)
	if err != nil {
		return nil, err
	}

	return w.back, nil
}

// HasCycle reports whether any cycle is reachable from start.
func HasCycle[N, L any](g *core.Graph[N, L], start core.NodeID) (bool, error) {
	back, err := BackEdges(g, start)
	if err != nil {
		return false, err
	}

	return len(back) > 0, nil
}
