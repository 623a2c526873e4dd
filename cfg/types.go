// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Action constraint, TracePoint, State, Transition, sentinel errors.

package cfg

import (
	"errors"
	"fmt"
)

var (
	// ErrMergeFinal is returned when a merge involves the exit node.
	ErrMergeFinal = errors.New("cfg: the exit node cannot be merged")

	// ErrMergeInitial is returned when the entry node would be absorbed.
	ErrMergeInitial = errors.New("cfg: the entry node cannot be absorbed")
)

// Action is an edge action. Equality is ==; String is the textual rendering
// used for ordering ties and display.
type Action interface {
	comparable
	String() string
}

// TracePoint is one observed value at a node together with the action the
// run took when leaving it. Points recorded at Exit carry the terminal action.
type TracePoint[V any, A Action] struct {
	Value V
	Next  A
}

// State is the payload of a CFG node.
type State[V any, A Action] struct {
	// Points lists every observation that reached the node, in arrival order.
	Points []TracePoint[V, A]

	// Path is a witness action sequence from Entry to the node.
	Path []A
}

// Transition labels an edge. Guard is nil until conditions are inferred, and
// stays nil on edges leaving non-branching nodes.
type Transition[A Action, G any] struct {
	Action A
	Guard  *G
}

// String renders "action" or "action [guard]".
func (t Transition[A, G]) String() string {
	if t.Guard == nil {
		return t.Action.String()
	}
	return fmt.Sprintf("%s [%v]", t.Action, *t.Guard)
}

// mergeStates combines the payloads of two merged nodes: points are unioned
// into a fresh slice (journaled payloads are never aliased), the survivor
// keeps its path.
func mergeStates[V any, A Action](into, from State[V, A]) State[V, A] {
	pts := make([]TracePoint[V, A], 0, len(into.Points)+len(from.Points))
	pts = append(pts, into.Points...)
	pts = append(pts, from.Points...)

	return State[V, A]{Points: pts, Path: into.Path}
}

func sameAction[A Action, G any](a, b Transition[A, G]) bool {
	return a.Action == b.Action
}
