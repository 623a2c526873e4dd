package bfs

import (
	"fmt"

	"github.com/katalvlaran/tracefold/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// successorLister is the slice of core.Graph that the walker needs.
type successorLister interface {
	Successors(id core.NodeID) ([]core.NodeID, error)
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph successorLister
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g from start, following edges in their
// direction. Returns ErrGraphNil or ErrStartNodeNotFound for invalid input.
func BFS[N, L any](g *core.Graph[N, L], start core.NodeID) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Order: make([]core.NodeID, 0, n),
			Depth: make(map[core.NodeID]int, n),
		},
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id reached at depth d and appends it.
func (w *walker) enqueue(id core.NodeID, d int) {
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it is empty or a lookup fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		next, err := w.graph.Successors(item.id)
		if err != nil {
			return fmt.Errorf("bfs: successors of %d: %w", item.id, err)
		}
		for _, id := range next {
			if !w.res.Reached(id) {
				w.enqueue(id, item.depth+1)
			}
		}
	}

	return nil
}
