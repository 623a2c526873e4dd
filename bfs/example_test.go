package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/tracefold/bfs"
	"github.com/katalvlaran/tracefold/core"
)

// ExampleBFS shows layered traversal of a small fork.
func ExampleBFS() {
	g := core.NewGraph[string, string]()
	root := g.AddNode("root")
	left := g.AddNode("left")
	right := g.AddNode("right")
	leaf := g.AddNode("leaf")
	_, _ = g.AddEdge(root, left, "l")
	_, _ = g.AddEdge(root, right, "r")
	_, _ = g.AddEdge(left, leaf, "x")

	res, _ := bfs.BFS(g, root)
	for _, id := range res.Order {
		name, _ := g.Node(id)
		fmt.Println(name, res.Depth[id])
	}
	// Output:
	// root 0
	// left 1
	// right 1
	// leaf 2
}
