// SPDX-License-Identifier: MIT
//
// File: generalizer.go
// Role: Generalizer construction, Generalize and trace extension.

package rpni

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tracefold/cfg"
	"github.com/katalvlaran/tracefold/separation"
	"github.com/katalvlaran/tracefold/trace"
)

// Generalizer learns a CFG from traces. It holds no per-run state.
type Generalizer[V any, A cfg.Action, G any] struct {
	inf  separation.Inferencer[V, G]
	cost separation.Cost[G]
	opts Options[A]
}

// New returns a Generalizer using inf to propose guards and cost to score them.
func New[V any, A cfg.Action, G any](inf separation.Inferencer[V, G], cost separation.Cost[G], opts Options[A]) *Generalizer[V, A, G] {
	opts.normalize()

	return &Generalizer[V, A, G]{inf: inf, cost: cost, opts: opts}
}

// Generalize extends out with every plan, runs the merge search and reports
// whether the learned graph carries finite-cost conditions. A failure to find
// conditions is a Result, not an error; errors are reserved for bad input
// and broken graph invariants.
func (g *Generalizer[V, A, G]) Generalize(plans []trace.Plan[V, A], out *cfg.CFG[V, A, G]) (Result, error) {
	for i, p := range plans {
		if err := g.ExtendPTP(out, p); err != nil {
			return ConditionInferenceFailure, fmt.Errorf("rpni: trace %d: %w", i, err)
		}
	}
	g.opts.Logger.Debug("prefix tree built",
		slog.Int("traces", len(plans)),
		slog.Int("nodes", out.NodeCount()),
		slog.Int("edges", out.EdgeCount()))

	if err := g.Search(out); err != nil {
		return ConditionInferenceFailure, err
	}
	if err := out.InferConditions(g.inf); err != nil {
		return ConditionInferenceFailure, err
	}

	cost := out.ConditionsCost(g.cost)
	res := OK
	if separation.IsInfinite(cost) {
		res = ConditionInferenceFailure
	}
	g.opts.Logger.Info("generalization finished",
		slog.String("result", res.String()),
		slog.Int("nodes", out.NodeCount()),
		slog.Int("edges", out.EdgeCount()),
		slog.Float64("cost", cost))

	return res, nil
}

// ExtendPTP threads plan through c starting at Entry. Existing edges with
// the same action are followed; missing ones get a fresh node whose path
// extends the current node's path. Every visited node records the observed
// value with the action taken next, and the run ends with a terminal edge
// into Exit. An empty plan is a no-op.
//
// The plan is validated and the node budget checked before c is touched.
func (g *Generalizer[V, A, G]) ExtendPTP(c *cfg.CFG[V, A, G], plan trace.Plan[V, A]) error {
	if plan.IsEmpty() {
		return nil
	}
	actions := plan.Actions()
	if err := g.precheck(c, actions); err != nil {
		return err
	}

	skip := g.opts.Skip
	nextAt := func(i int) A {
		if i < len(actions) {
			return actions[i]
		}
		return skip
	}

	cur := c.Entry()
	first, _ := plan.FirstState()
	if err := c.AddPoint(cur, cfg.TracePoint[V, A]{Value: first, Next: nextAt(0)}); err != nil {
		return err
	}

	var err error
	plan.Each(func(i int, _ V, a A, to V) {
		if err != nil {
			return
		}
		next, ok, ferr := c.FindSucc(cur, a)
		if ferr != nil {
			err = ferr
			return
		}
		if !ok {
			path, perr := c.Path(cur)
			if perr != nil {
				err = perr
				return
			}
			next = c.AddNode(append(path, a))
			if _, err = c.AddEdge(cur, next, a); err != nil {
				return
			}
		}
		err = c.AddPoint(next, cfg.TracePoint[V, A]{Value: to, Next: nextAt(i + 1)})
		cur = next
	})
	if err != nil {
		return err
	}

	last, _ := plan.LastState()
	if err := c.AddPoint(c.Exit(), cfg.TracePoint[V, A]{Value: last, Next: skip}); err != nil {
		return err
	}
	if !c.HasEdge(cur, c.Exit(), skip) {
		if _, err := c.AddEdge(cur, c.Exit(), skip); err != nil {
			return err
		}
	}

	return nil
}

// precheck rejects the reserved action and counts the nodes the plan would
// add, following existing edges without creating anything.
func (g *Generalizer[V, A, G]) precheck(c *cfg.CFG[V, A, G], actions []A) error {
	for _, a := range actions {
		if a == g.opts.Skip {
			return fmt.Errorf("%w: %s", ErrReservedAction, a)
		}
	}
	if g.opts.MaxNodes <= 0 {
		return nil
	}

	cur, fresh := c.Entry(), 0
	for i, a := range actions {
		next, ok, err := c.FindSucc(cur, a)
		if err != nil {
			return err
		}
		if !ok {
			fresh = len(actions) - i
			break
		}
		cur = next
	}
	if c.NodeCount()+fresh > g.opts.MaxNodes {
		return fmt.Errorf("%w: %d + %d > %d", ErrNodeLimit, c.NodeCount(), fresh, g.opts.MaxNodes)
	}

	return nil
}
