// SPDX-License-Identifier: MIT

package automaton

import "github.com/katalvlaran/tracefold/trace"

// AddPlan threads plan as a fresh chain of states from Initial, closes it
// with a terminal transition into Final and folds from Initial, so runs that
// share an update prefix end up sharing states. The last value is recorded
// on both the last chain state and Final. An empty plan is a no-op.
func (a *Automaton[V, U]) AddPlan(plan trace.Plan[V, U], terminal U) error {
	if plan.IsEmpty() {
		return nil
	}
	first, _ := plan.FirstState()
	if err := a.AddTracePoints(a.initial, first); err != nil {
		return err
	}

	cur := a.initial
	var err error
	plan.Each(func(i int, _ V, u U, to V) {
		if err != nil {
			return
		}
		next := a.AddState("")
		if _, err = a.AddTransition(cur, next, u); err != nil {
			return
		}
		err = a.AddTracePoints(next, to)
		cur = next
	})
	if err != nil {
		return err
	}

	last, _ := plan.LastState()
	if err := a.AddTracePoints(a.final, last); err != nil {
		return err
	}
	if _, err := a.AddTransition(cur, a.final, terminal); err != nil {
		return err
	}

	return a.Fold(a.initial)
}
