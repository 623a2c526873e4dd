// SPDX-License-Identifier: MIT

package cfg

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/tracefold/core"
)

// Signature renders the graph reachable from Entry with node IDs erased.
// Nodes are numbered in breadth-first order, visiting out-edges sorted by
// their rendering; two CFGs with the same Signature are isomorphic on their
// reachable part, guards and point counts included.
func (c *CFG[V, A, G]) Signature() string {
	index := map[core.NodeID]int{c.entry: 0}
	queue := []core.NodeID{c.entry}
	var b strings.Builder

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		s, _ := c.g.Node(id)
		edges, _ := c.g.SuccEdges(id)
		sort.SliceStable(edges, func(i, j int) bool {
			return edges[i].Label.String() < edges[j].Label.String()
		})
		fmt.Fprintf(&b, "%d exit=%t points=%d\n", index[id], id == c.exit, len(s.Points))
		for _, e := range edges {
			if _, seen := index[e.To]; !seen {
				index[e.To] = len(index)
				queue = append(queue, e.To)
			}
			fmt.Fprintf(&b, "  -%s-> %d\n", e.Label, index[e.To])
		}
	}

	return b.String()
}
