// SPDX-License-Identifier: MIT
//
// File: automaton.go
// Role: Automaton construction, queries and Clone.

package automaton

import (
	"errors"

	"github.com/katalvlaran/tracefold/bfs"
	"github.com/katalvlaran/tracefold/core"
)

var (
	// ErrMergeFinal is returned when a merge involves the final state.
	ErrMergeFinal = errors.New("automaton: the final state cannot be merged")

	// ErrMergeInitial is returned when the initial state would be absorbed.
	ErrMergeInitial = errors.New("automaton: the initial state cannot be absorbed")
)

// StateID identifies a state.
type StateID = core.NodeID

// Update labels a transition. Two transitions with == updates are the same
// for determinism purposes.
type Update interface {
	comparable
	String() string
}

// State is the payload of an automaton node.
type State[V any] struct {
	Name   string
	Points []V
}

// Transition is an edge of an automaton.
type Transition[U Update] = core.Edge[U]

// Automaton is a multigraph of states with fixed initial and final states.
type Automaton[V any, U Update] struct {
	g       *core.Graph[State[V], U]
	initial StateID
	final   StateID
}

func unionStates[V any](into, from State[V]) State[V] {
	pts := make([]V, 0, len(into.Points)+len(from.Points))
	pts = append(pts, into.Points...)
	pts = append(pts, from.Points...)

	return State[V]{Name: into.Name, Points: pts}
}

// New returns an automaton holding only the initial and final states.
func New[V any, U Update]() *Automaton[V, U] {
	g := core.NewGraph(
		core.WithLoops[State[V], U](),
		core.WithMultiEdges[State[V], U](),
		core.WithNodeMerge[State[V], U](unionStates[V]),
	)
	a := &Automaton[V, U]{g: g}
	a.initial = g.AddNode(State[V]{Name: "initial"})
	a.final = g.AddNode(State[V]{Name: "final"})

	return a
}

// Initial returns the initial state.
func (a *Automaton[V, U]) Initial() StateID { return a.initial }

// Final returns the final state.
func (a *Automaton[V, U]) Final() StateID { return a.final }

// Graph exposes the underlying graph for read-only consumers such as exporters.
func (a *Automaton[V, U]) Graph() *core.Graph[State[V], U] { return a.g }

// AddState creates an empty state.
func (a *Automaton[V, U]) AddState(name string) StateID {
	return a.g.AddNode(State[V]{Name: name})
}

// AddTransition adds src -u-> dst. Parallel transitions are allowed until
// the next determinization.
func (a *Automaton[V, U]) AddTransition(src, dst StateID, u U) (core.EdgeID, error) {
	return a.g.AddEdge(src, dst, u)
}

// AddTracePoints appends values to s.
func (a *Automaton[V, U]) AddTracePoints(s StateID, values ...V) error {
	st, err := a.g.Node(s)
	if err != nil {
		return err
	}
	pts := make([]V, 0, len(st.Points)+len(values))
	pts = append(pts, st.Points...)
	st.Points = append(pts, values...)

	return a.g.SetNode(s, st)
}

// Points returns a copy of the trace points of s.
func (a *Automaton[V, U]) Points(s StateID) ([]V, error) {
	st, err := a.g.Node(s)
	if err != nil {
		return nil, err
	}
	out := make([]V, len(st.Points))
	copy(out, st.Points)

	return out, nil
}

// Contains reports whether s is live.
func (a *Automaton[V, U]) Contains(s StateID) bool { return a.g.HasNode(s) }

// States returns the live states ascending.
func (a *Automaton[V, U]) States() []StateID { return a.g.Nodes() }

// Transitions returns the out-edges of s by EdgeID.
func (a *Automaton[V, U]) Transitions(s StateID) ([]Transition[U], error) {
	return a.g.SuccEdges(s)
}

// FindTransition returns the target of the first out-edge of s labeled u.
func (a *Automaton[V, U]) FindTransition(s StateID, u U) (StateID, bool, error) {
	edges, err := a.g.SuccEdges(s)
	if err != nil {
		return 0, false, err
	}
	for _, e := range edges {
		if e.Label == u {
			return e.To, true, nil
		}
	}

	return 0, false, nil
}

// Clone returns a deep copy that keeps state IDs.
func (a *Automaton[V, U]) Clone() *Automaton[V, U] {
	g := a.g.Clone()
	for _, id := range g.Nodes() {
		// id comes from g.Nodes(), so Node and SetNode cannot miss.
		st, _ := g.Node(id)
		pts := make([]V, len(st.Points))
		copy(pts, st.Points)
		st.Points = pts
		_ = g.SetNode(id, st)
	}

	return &Automaton[V, U]{g: g, initial: a.initial, final: a.final}
}

// Unreachable returns the live states not reachable from Initial, ascending.
func (a *Automaton[V, U]) Unreachable() []StateID {
	res, err := bfs.BFS(a.g, a.initial)
	if err != nil {
		return nil
	}
	var out []StateID
	for _, id := range a.g.Nodes() {
		if !res.Reached(id) {
			out = append(out, id)
		}
	}

	return out
}
