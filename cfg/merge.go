// SPDX-License-Identifier: MIT
//
// File: merge.go
// Role: Speculative node merges on top of the core journal.
// AI-HINT (file):
//   - Preconditions are checked before a transaction is opened, so a
//     rejected merge never mutates the graph or leaves a tx behind.

package cfg

import (
	"fmt"

	"github.com/katalvlaran/tracefold/core"
)

// MergeNodes absorbs src into dst and returns the survivor (dst).
// The first call after a commit or revert opens a transaction.
//
// Errors: ErrMergeFinal if either side is Exit, ErrMergeInitial if src is
// Entry, core.ErrNodeNotFound for dead nodes.
func (c *CFG[V, A, G]) MergeNodes(src, dst core.NodeID) (core.NodeID, error) {
	if src == c.exit || dst == c.exit {
		return 0, ErrMergeFinal
	}
	if src == c.entry && dst != c.entry {
		return 0, ErrMergeInitial
	}
	if !c.g.HasNode(src) || !c.g.HasNode(dst) {
		return 0, fmt.Errorf("cfg: merge %d into %d: %w", src, dst, core.ErrNodeNotFound)
	}
	if !c.g.InTx() {
		if err := c.g.Begin(); err != nil {
			return 0, err
		}
	}
	if err := c.g.MergeInto(src, dst); err != nil {
		return 0, fmt.Errorf("cfg: merge %d into %d: %w", src, dst, err)
	}

	return dst, nil
}

// InTx reports whether speculative changes are pending.
func (c *CFG[V, A, G]) InTx() bool { return c.g.InTx() }

// CommitMerges keeps the pending changes. It is a no-op with nothing pending.
func (c *CFG[V, A, G]) CommitMerges() error {
	if !c.g.InTx() {
		return nil
	}
	return c.g.Commit()
}

// RevertMerges discards the pending changes. It is a no-op with nothing pending.
func (c *CFG[V, A, G]) RevertMerges() error {
	if !c.g.InTx() {
		return nil
	}
	return c.g.Revert()
}

// Begin opens a transaction explicitly, so that edits other than merges
// (guard updates, new points) are also journaled.
func (c *CFG[V, A, G]) Begin() error { return c.g.Begin() }
