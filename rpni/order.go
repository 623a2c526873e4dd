// SPDX-License-Identifier: MIT
//
// File: order.go
// Role: Node order and the sorted RED/BLUE sets.
// Determinism:
//   - Sets break path ties by NodeID, so iteration order never depends on
//     map order.

package rpni

import (
	"sort"
	"strings"

	"github.com/katalvlaran/tracefold/core"
)

// Compare orders two canonical paths: shorter first, then by the cost of the
// first differing action, then by its text. Returns -1, 0 or +1.
func (g *Generalizer[V, A, G]) Compare(a, b []A) int {
	if d := len(a) - len(b); d != 0 {
		return sign(float64(d))
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if d := g.opts.ActionCost(a[i]) - g.opts.ActionCost(b[i]); d != 0 {
			return sign(d)
		}
		if d := strings.Compare(a[i].String(), b[i].String()); d != 0 {
			return d
		}
	}

	return 0
}

func sign(f float64) int {
	switch {
	case f < 0:
		return -1
	case f > 0:
		return 1
	default:
		return 0
	}
}

// member is a set element with the path it had when it was inserted.
// Survivors keep their path, so the snapshot stays accurate.
type member[A any] struct {
	id   core.NodeID
	path []A
}

// nodeSet is a set of nodes kept sorted by (Compare(path), id).
type nodeSet[A any] struct {
	items []member[A]
	index map[core.NodeID]struct{}
	cmp   func(a, b []A) int
}

func newNodeSet[A any](cmp func(a, b []A) int) *nodeSet[A] {
	return &nodeSet[A]{index: make(map[core.NodeID]struct{}), cmp: cmp}
}

func (s *nodeSet[A]) less(a, b member[A]) bool {
	if c := s.cmp(a.path, b.path); c != 0 {
		return c < 0
	}
	return a.id < b.id
}

// add inserts id; a second insert of the same id is ignored.
func (s *nodeSet[A]) add(id core.NodeID, path []A) {
	if s.has(id) {
		return
	}
	m := member[A]{id: id, path: path}
	i := sort.Search(len(s.items), func(i int) bool { return s.less(m, s.items[i]) })
	s.items = append(s.items, member[A]{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = m
	s.index[id] = struct{}{}
}

func (s *nodeSet[A]) has(id core.NodeID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *nodeSet[A]) empty() bool { return len(s.items) == 0 }

// popMin removes and returns the least element.
func (s *nodeSet[A]) popMin() core.NodeID {
	m := s.items[0]
	s.items = s.items[1:]
	delete(s.index, m.id)

	return m.id
}

// ids returns a snapshot of the members in order.
func (s *nodeSet[A]) ids() []core.NodeID {
	out := make([]core.NodeID, len(s.items))
	for i, m := range s.items {
		out[i] = m.id
	}

	return out
}

// retain drops every member for which keep is false.
func (s *nodeSet[A]) retain(keep func(core.NodeID) bool) {
	kept := s.items[:0]
	for _, m := range s.items {
		if keep(m.id) {
			kept = append(kept, m)
		} else {
			delete(s.index, m.id)
		}
	}
	s.items = kept
}

// Colors is the RED/BLUE partition of a search. Nodes in neither set are
// uncolored.
type Colors[A any] struct {
	red  *nodeSet[A]
	blue *nodeSet[A]
}

// NewColors returns an empty partition ordered by cmp.
func NewColors[A any](cmp func(a, b []A) int) *Colors[A] {
	return &Colors[A]{red: newNodeSet(cmp), blue: newNodeSet(cmp)}
}

// PaintRed adds id to RED. The caller removes it from BLUE first.
func (c *Colors[A]) PaintRed(id core.NodeID, path []A) { c.red.add(id, path) }

// PaintBlue adds id to BLUE.
func (c *Colors[A]) PaintBlue(id core.NodeID, path []A) { c.blue.add(id, path) }

// IsRed reports whether id is RED.
func (c *Colors[A]) IsRed(id core.NodeID) bool { return c.red.has(id) }

// IsBlue reports whether id is BLUE.
func (c *Colors[A]) IsBlue(id core.NodeID) bool { return c.blue.has(id) }

// Red returns the RED nodes in order.
func (c *Colors[A]) Red() []core.NodeID { return c.red.ids() }

// Blue returns the BLUE nodes in order.
func (c *Colors[A]) Blue() []core.NodeID { return c.blue.ids() }
