package rpni_test

import (
	"github.com/katalvlaran/tracefold/cfg"
	"github.com/katalvlaran/tracefold/core"
	"github.com/katalvlaran/tracefold/rpni"
	"github.com/katalvlaran/tracefold/separation"
	"github.com/katalvlaran/tracefold/trace"
)

type op string

func (o op) String() string { return string(o) }

const skip op = "skip"

// cond is "v < K" when Lt, else "v >= K".
type cond struct {
	Lt bool
	K  int
}

type testCFG = cfg.CFG[int, op, cond]

var domain = separation.DomainFunc[int, cond](func(g cond, v int) bool {
	if g.Lt {
		return v < g.K
	}
	return v >= g.K
})

func newGeneralizer(opts rpni.Options[op]) *rpni.Generalizer[int, op, cond] {
	inf := separation.NewLinear[int, cond](domain, []cond{{Lt: true, K: 3}, {Lt: false, K: 3}})
	cost := separation.CostSum(separation.CostBadConditions[cond](), separation.CostSize(func(cond) int { return 1 }))

	return rpni.New[int, op, cond](inf, cost, opts)
}

// plan builds s0 -a1-> s1 -a2-> s2 ... from alternating values and actions.
func plan(first int, rest ...any) trace.Plan[int, op] {
	var steps []trace.Step[int, op]
	for i := 0; i+1 < len(rest); i += 2 {
		steps = append(steps, trace.Step[int, op]{Action: op(rest[i].(string)), State: rest[i+1].(int)})
	}
	return trace.New(first, steps...)
}

// walk follows actions from Entry and returns the node reached.
func walk(c *testCFG, actions ...op) (core.NodeID, bool) {
	cur := c.Entry()
	for _, a := range actions {
		next, ok, err := c.FindSucc(cur, a)
		if err != nil || !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// recorder counts observer events.
type recorder struct {
	attempted, committed, reverted, promoted, folded int
}

func (r *recorder) MergeAttempted(core.NodeID, core.NodeID)          { r.attempted++ }
func (r *recorder) MergeCommitted(core.NodeID, core.NodeID, float64) { r.committed++ }
func (r *recorder) MergeReverted(core.NodeID, core.NodeID)           { r.reverted++ }
func (r *recorder) Promoted(core.NodeID)                             { r.promoted++ }
func (r *recorder) Folded(core.NodeID, core.NodeID)                  { r.folded++ }
