// Package bfs provides breadth-first reachability over a tracefold core.Graph.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Return a BFSResult with the visit Order and the Depth of every reached
//     node; Reached answers membership.
//
// Why
//
//   - Reachability from the initial node is an invariant of every learned
//     automaton; cfg.Unreachable and automaton.Unreachable check it here.
//
// Determinism
//
//	core.Graph.Successors returns node IDs sorted ascending, and BFS enqueues
//	successors in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = live nodes, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrStartNodeNotFound   if the start node is not live.
package bfs
