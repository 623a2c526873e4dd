// SPDX-License-Identifier: MIT
//
// File: conditions.go
// Role: Guard inference on branching nodes and the cost of the result.

package cfg

import (
	"github.com/katalvlaran/tracefold/core"
	"github.com/katalvlaran/tracefold/separation"
)

// InferConditions recomputes the guard of every edge. Edges leaving a node
// with out-degree < 2 get no guard. For a branching node, the edge labeled a
// is guarded by inf.Infer(values leaving by a, all other values); a failed
// inference leaves the edge unguarded.
func (c *CFG[V, A, G]) InferConditions(inf separation.Inferencer[V, G]) error {
	for _, id := range c.g.Nodes() {
		if err := c.inferNode(id, inf); err != nil {
			return err
		}
	}

	return nil
}

func (c *CFG[V, A, G]) inferNode(id core.NodeID, inf separation.Inferencer[V, G]) error {
	edges, err := c.g.SuccEdges(id)
	if err != nil {
		return err
	}
	if len(edges) < 2 {
		for _, e := range edges {
			if err := c.setGuard(e, nil); err != nil {
				return err
			}
		}
		return nil
	}

	s, err := c.g.Node(id)
	if err != nil {
		return err
	}
	for _, e := range edges {
		var first, second []V
		for _, p := range s.Points {
			if p.Next == e.Label.Action {
				first = append(first, p.Value)
			} else {
				second = append(second, p.Value)
			}
		}
		var guard *G
		if g, ok := inf.Infer(first, second); ok {
			guard = &g
		}
		if err := c.setGuard(e, guard); err != nil {
			return err
		}
	}

	return nil
}

// setGuard skips no-op updates so the journal does not grow on nil → nil.
func (c *CFG[V, A, G]) setGuard(e Edge[A, G], guard *G) error {
	if e.Label.Guard == nil && guard == nil {
		return nil
	}
	return c.g.SetLabel(e.ID, Transition[A, G]{Action: e.Label.Action, Guard: guard})
}

// ConditionsCost sums NodeConditionsCost over every branching node.
func (c *CFG[V, A, G]) ConditionsCost(cost separation.Cost[G]) float64 {
	total := 0.0
	for _, id := range c.g.Nodes() {
		if d, _ := c.g.OutDegree(id); d < 2 {
			continue
		}
		nc, err := c.NodeConditionsCost(id, cost)
		if err != nil || separation.IsInfinite(nc) {
			return separation.Infinity
		}
		total += nc
	}

	return total
}

// NodeConditionsCost is Infinity when node branches and some out-edge has no
// guard, otherwise the sum of cost over its out-edge guards.
func (c *CFG[V, A, G]) NodeConditionsCost(node core.NodeID, cost separation.Cost[G]) (float64, error) {
	edges, err := c.g.SuccEdges(node)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for _, e := range edges {
		if len(edges) >= 2 && e.Label.Guard == nil {
			return separation.Infinity, nil
		}
		total += cost(e.Label.Guard)
	}

	return total, nil
}
