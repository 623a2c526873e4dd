// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: Red/blue merge search.
// AI-HINT (file):
//   - A merge is accepted on the first RED node with finite cost, not the
//     cheapest one; the node order is a search priority.
//   - Every tentative merge ends in CommitMerges or RevertMerges before the
//     next one starts.

package rpni

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tracefold/cfg"
	"github.com/katalvlaran/tracefold/core"
	"github.com/katalvlaran/tracefold/separation"
)

// Search runs the red/blue merge search on c until no BLUE node is left.
func (g *Generalizer[V, A, G]) Search(c *cfg.CFG[V, A, G]) error {
	if c.InTx() {
		return ErrDanglingTx
	}

	colors := NewColors(g.Compare)
	if err := g.paint(c, colors, c.Entry(), true); err != nil {
		return err
	}
	if err := g.frontier(c, colors, c.Entry()); err != nil {
		return err
	}

	for !colors.blue.empty() {
		qb := colors.blue.popMin()
		if !c.Contains(qb) {
			continue
		}

		accepted, err := g.tryRed(c, colors, qb)
		if err != nil {
			return err
		}
		if accepted {
			alive := c.Contains
			colors.red.retain(alive)
			colors.blue.retain(alive)
			for _, q := range colors.red.ids() {
				if err := g.frontier(c, colors, q); err != nil {
					return err
				}
			}
			continue
		}

		g.opts.Observer.Promoted(qb)
		g.opts.Logger.Debug("promoted", slog.Int("node", int(qb)))
		if err := g.paint(c, colors, qb, true); err != nil {
			return err
		}
		if err := g.frontier(c, colors, qb); err != nil {
			return err
		}
	}

	return nil
}

// tryRed merges qb into each RED node in order and keeps the first merge
// whose folded graph has finite conditions cost.
func (g *Generalizer[V, A, G]) tryRed(c *cfg.CFG[V, A, G], colors *Colors[A], qb core.NodeID) (bool, error) {
	for _, qr := range colors.red.ids() {
		g.opts.Observer.MergeAttempted(qb, qr)

		cost, err := g.speculate(c, colors, qb, qr)
		if err != nil {
			if rerr := c.RevertMerges(); rerr != nil {
				return false, rerr
			}
			return false, err
		}
		if separation.IsInfinite(cost) {
			if err := c.RevertMerges(); err != nil {
				return false, err
			}
			g.opts.Observer.MergeReverted(qb, qr)
			g.opts.Logger.Debug("merge reverted", slog.Int("blue", int(qb)), slog.Int("red", int(qr)))
			continue
		}

		if err := c.CommitMerges(); err != nil {
			return false, err
		}
		g.opts.Observer.MergeCommitted(qb, qr, cost)
		g.opts.Logger.Debug("merge committed",
			slog.Int("blue", int(qb)), slog.Int("red", int(qr)), slog.Float64("cost", cost))

		return true, nil
	}

	return false, nil
}

// speculate performs merge, fold and inference inside one transaction and
// returns the resulting cost. The caller closes the transaction.
func (g *Generalizer[V, A, G]) speculate(c *cfg.CFG[V, A, G], colors *Colors[A], qb, qr core.NodeID) (float64, error) {
	merged, err := c.MergeNodes(qb, qr)
	if err != nil {
		return 0, fmt.Errorf("rpni: merge %d into %d: %w", qb, qr, err)
	}
	if err := g.Fold(c, merged, colors); err != nil {
		return 0, err
	}
	if err := c.InferConditions(g.inf); err != nil {
		return 0, err
	}

	return c.ConditionsCost(g.cost), nil
}

// frontier paints BLUE every successor of q that is neither RED nor Exit.
func (g *Generalizer[V, A, G]) frontier(c *cfg.CFG[V, A, G], colors *Colors[A], q core.NodeID) error {
	edges, err := c.SuccEdges(q)
	if err != nil {
		return err
	}
	for _, e := range edges {
		if e.To == c.Exit() || colors.IsRed(e.To) {
			continue
		}
		if err := g.paint(c, colors, e.To, false); err != nil {
			return err
		}
	}

	return nil
}

func (g *Generalizer[V, A, G]) paint(c *cfg.CFG[V, A, G], colors *Colors[A], id core.NodeID, red bool) error {
	path, err := c.Path(id)
	if err != nil {
		return err
	}
	if red {
		colors.PaintRed(id, path)
	} else {
		colors.PaintBlue(id, path)
	}

	return nil
}
