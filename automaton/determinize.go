// SPDX-License-Identifier: MIT
//
// File: determinize.go
// Role: Update-determinization, folding and state merging.
// AI-HINT (file):
//   - Update groups are recomputed after every batch merge: a merge may kill
//     a target listed under another update.
//   - If the state being determinized is itself absorbed, work continues on
//     the survivor.

package automaton

import (
	"fmt"

	"github.com/katalvlaran/tracefold/core"
)

// IsUpdateDeterministic reports whether every state is update-deterministic.
func (a *Automaton[V, U]) IsUpdateDeterministic() bool {
	for _, s := range a.g.Nodes() {
		if !a.IsStateUpdateDeterministic(s) {
			return false
		}
	}

	return true
}

// IsStateUpdateDeterministic reports whether no two out-edges of s share an
// update. A dead state is trivially deterministic.
func (a *Automaton[V, U]) IsStateUpdateDeterministic(s StateID) bool {
	edges, err := a.g.SuccEdges(s)
	if err != nil {
		return true
	}
	seen := make(map[U]struct{}, len(edges))
	for _, e := range edges {
		if _, dup := seen[e.Label]; dup {
			return false
		}
		seen[e.Label] = struct{}{}
	}

	return true
}

// MakeUpdateDeterministic merges, for every update shared by several
// out-edges of s, their targets into one state and then removes all but the
// first edge per update. It reports whether anything changed.
func (a *Automaton[V, U]) MakeUpdateDeterministic(s StateID) (bool, error) {
	_, changed, err := a.determinize(s)
	return changed, err
}

// determinize is MakeUpdateDeterministic that also returns the state s
// became (s itself unless it was absorbed by a batch merge).
func (a *Automaton[V, U]) determinize(s StateID) (StateID, bool, error) {
	if !a.g.HasNode(s) || a.IsStateUpdateDeterministic(s) {
		return s, false, nil
	}

	for {
		batch, err := a.firstSharedUpdate(s)
		if err != nil {
			return s, true, err
		}
		if batch == nil {
			break
		}
		survivor, _, err := a.MergeStates(batch)
		if err != nil {
			return s, true, err
		}
		if !a.g.HasNode(s) {
			s = survivor
		}
	}

	edges, err := a.g.SuccEdges(s)
	if err != nil {
		return s, true, err
	}
	kept := make(map[U]struct{}, len(edges))
	for _, e := range edges {
		if _, dup := kept[e.Label]; dup {
			if err := a.g.RemoveEdge(e.ID); err != nil {
				return s, true, err
			}
			continue
		}
		kept[e.Label] = struct{}{}
	}

	return s, true, nil
}

// firstSharedUpdate returns the distinct targets of the first update (by
// edge order) that leads from s to two or more states, or nil.
func (a *Automaton[V, U]) firstSharedUpdate(s StateID) ([]StateID, error) {
	edges, err := a.g.SuccEdges(s)
	if err != nil {
		return nil, err
	}
	var order []U
	targets := make(map[U][]StateID)
	for _, e := range edges {
		ts, seen := targets[e.Label]
		if !seen {
			order = append(order, e.Label)
		}
		if !containsState(ts, e.To) {
			targets[e.Label] = append(ts, e.To)
		}
	}
	for _, u := range order {
		if len(targets[u]) > 1 {
			return targets[u], nil
		}
	}

	return nil, nil
}

// Fold determinizes s and, when that changed the automaton, recursively folds
// every distinct successor other than s itself.
func (a *Automaton[V, U]) Fold(s StateID) error {
	s, changed, err := a.determinize(s)
	if err != nil || !changed {
		return err
	}
	succ, err := a.g.Successors(s)
	if err != nil {
		return err
	}
	for _, t := range succ {
		if t == s {
			continue
		}
		if err := a.Fold(t); err != nil {
			return err
		}
	}

	return nil
}

// MergeStates merges the live states of batch into one and returns it. If
// Initial is in the batch it survives, otherwise the first live state does.
// Dead states are ignored; ok is false when none is live. Final in the batch
// is an error and nothing is merged.
func (a *Automaton[V, U]) MergeStates(batch []StateID) (survivor StateID, ok bool, err error) {
	live := make([]StateID, 0, len(batch))
	for _, s := range batch {
		if s == a.final {
			return 0, false, ErrMergeFinal
		}
		if a.g.HasNode(s) && !containsState(live, s) {
			live = append(live, s)
		}
	}
	if len(live) == 0 {
		return 0, false, nil
	}
	for i, s := range live {
		if s == a.initial {
			live[0], live[i] = live[i], live[0]
			break
		}
	}

	survivor = live[0]
	for _, s := range live[1:] {
		if err := a.MergeState(s, survivor); err != nil {
			return survivor, true, err
		}
	}

	return survivor, true, nil
}

// MergeState absorbs src into dst: src's points and edges move to dst.
// The result is not necessarily update-deterministic.
func (a *Automaton[V, U]) MergeState(src, dst StateID) error {
	if src == a.final || dst == a.final {
		return ErrMergeFinal
	}
	if src == a.initial && dst != a.initial {
		return ErrMergeInitial
	}
	if src == dst {
		return nil
	}
	if err := a.g.MergeInto(src, dst); err != nil {
		return fmt.Errorf("automaton: merge %d into %d: %w", src, dst, err)
	}

	return nil
}

func containsState(ids []StateID, id core.NodeID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
