// SPDX-License-Identifier: MIT
//
// File: plan.go
// Role: Plan[V, A], an immutable alternating sequence of states and actions.

package trace

import "errors"

// ErrIndexOutOfRange is returned by StateAt and ActionAt for bad indices.
var ErrIndexOutOfRange = errors.New("trace: index out of range")

// Step is one transition of a run: Action was executed and led to State.
type Step[V, A any] struct {
	Action A
	State  V
}

// Plan is one observed run. The zero value is the empty trace.
type Plan[V, A any] struct {
	first V
	steps []Step[V, A]
	ok    bool // false for the empty trace
}

// New builds a plan starting in first. steps is copied.
func New[V, A any](first V, steps ...Step[V, A]) Plan[V, A] {
	cp := make([]Step[V, A], len(steps))
	copy(cp, steps)

	return Plan[V, A]{first: first, steps: cp, ok: true}
}

// IsEmpty reports whether the plan has no states.
func (p Plan[V, A]) IsEmpty() bool { return !p.ok }

// Len returns the number of states (steps + 1, or 0 for the empty trace).
func (p Plan[V, A]) Len() int {
	if !p.ok {
		return 0
	}
	return len(p.steps) + 1
}

// Steps returns the number of actions.
func (p Plan[V, A]) Steps() int { return len(p.steps) }

// FirstState returns the initial state; ok is false for the empty trace.
func (p Plan[V, A]) FirstState() (v V, ok bool) {
	return p.first, p.ok
}

// StateAt returns the i-th state; state 0 is the first state.
func (p Plan[V, A]) StateAt(i int) (V, error) {
	var zero V
	switch {
	case !p.ok || i < 0 || i > len(p.steps):
		return zero, ErrIndexOutOfRange
	case i == 0:
		return p.first, nil
	default:
		return p.steps[i-1].State, nil
	}
}

// ActionAt returns the i-th action, the one leading from state i to state i+1.
func (p Plan[V, A]) ActionAt(i int) (A, error) {
	var zero A
	if i < 0 || i >= len(p.steps) {
		return zero, ErrIndexOutOfRange
	}

	return p.steps[i].Action, nil
}

// LastState returns the final state of the run.
func (p Plan[V, A]) LastState() (v V, ok bool) {
	if !p.ok {
		return v, false
	}
	if len(p.steps) == 0 {
		return p.first, true
	}
	return p.steps[len(p.steps)-1].State, true
}

// Actions returns a fresh copy of the action sequence.
func (p Plan[V, A]) Actions() []A {
	out := make([]A, len(p.steps))
	for i, s := range p.steps {
		out[i] = s.Action
	}

	return out
}

// Each calls fn for every step in order. fn receives the state the step
// starts from, the action and the state it leads to.
func (p Plan[V, A]) Each(fn func(i int, from V, action A, to V)) {
	if !p.ok {
		return
	}
	from := p.first
	for i, s := range p.steps {
		fn(i, from, s.Action, s.State)
		from = s.State
	}
}
