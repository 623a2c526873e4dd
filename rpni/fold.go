// SPDX-License-Identifier: MIT
//
// File: fold.go
// Role: Cascading fold of same-action siblings.
// AI-HINT (file):
//   - Merge direction: RED beats BLUE beats uncolored, and Entry always
//     survives. A RED node is never absorbed by a less settled one.
//   - Groups are recomputed after each merge: a merge may absorb the node
//     being folded or a destination of another group.

package rpni

import (
	"github.com/katalvlaran/tracefold/cfg"
	"github.com/katalvlaran/tracefold/core"
)

// Fold merges, starting at source, every set of distinct destinations
// reached by the same action from one node, and repeats on each survivor
// until no node has two out-edges with the same action to different nodes.
// Merges join the open transaction of c.
func (g *Generalizer[V, A, G]) Fold(c *cfg.CFG[V, A, G], source core.NodeID, colors *Colors[A]) error {
	stack := []core.NodeID{source}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for c.Contains(cur) {
			dests, err := firstConflict(c, cur)
			if err != nil {
				return err
			}
			if dests == nil {
				break
			}
			survivor := dests[0]
			for _, from := range dests[1:] {
				to := survivor
				if colors.IsRed(from) || (colors.IsBlue(from) && !colors.IsRed(to)) {
					from, to = to, from
				}
				if from == c.Entry() {
					from, to = to, from
				}
				if survivor, err = c.MergeNodes(from, to); err != nil {
					return err
				}
				g.opts.Observer.Folded(from, to)
			}
			stack = append(stack, survivor)
		}
	}

	return nil
}

// firstConflict returns the distinct destinations of the first action (by
// edge order) that leads from node to two or more nodes, or nil.
func firstConflict[V any, A cfg.Action, G any](c *cfg.CFG[V, A, G], node core.NodeID) ([]core.NodeID, error) {
	edges, err := c.SuccEdges(node)
	if err != nil {
		return nil, err
	}
	var order []A
	dests := make(map[A][]core.NodeID)
	for _, e := range edges {
		a := e.Label.Action
		ds, seen := dests[a]
		if !seen {
			order = append(order, a)
		}
		if !containsID(ds, e.To) {
			dests[a] = append(ds, e.To)
		}
	}
	for _, a := range order {
		if len(dests[a]) > 1 {
			return dests[a], nil
		}
	}

	return nil, nil
}

func containsID(ids []core.NodeID, id core.NodeID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
