// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Options, Result, Observer and sentinel errors.

package rpni

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/tracefold/core"
	"github.com/katalvlaran/tracefold/internal/logging"
)

var (
	// ErrReservedAction is returned when a trace uses the terminal action.
	ErrReservedAction = errors.New("rpni: trace uses the reserved terminal action")

	// ErrNodeLimit is returned when extending a trace would exceed MaxNodes.
	ErrNodeLimit = errors.New("rpni: node limit exceeded")

	// ErrDanglingTx is returned when Search starts with uncommitted merges.
	ErrDanglingTx = errors.New("rpni: cfg has an open merge transaction")
)

// Result is the outcome of a generalization run.
type Result int

const (
	// OK means every branching node carries finite-cost conditions.
	OK Result = iota
	// ConditionInferenceFailure means some branch has no acceptable condition.
	ConditionInferenceFailure
)

// String returns the result name.
func (r Result) String() string {
	switch r {
	case OK:
		return "OK"
	case ConditionInferenceFailure:
		return "CONDITION_INFERENCE_FAILURE"
	default:
		return "UNKNOWN"
	}
}

// Observer receives search events. Implementations must be cheap; they run
// inside the search loop.
type Observer interface {
	MergeAttempted(blue, red core.NodeID)
	MergeCommitted(blue, red core.NodeID, cost float64)
	MergeReverted(blue, red core.NodeID)
	Promoted(blue core.NodeID)
	Folded(from, to core.NodeID)
}

// NopObserver ignores every event.
type NopObserver struct{}

func (NopObserver) MergeAttempted(core.NodeID, core.NodeID)          {}
func (NopObserver) MergeCommitted(core.NodeID, core.NodeID, float64) {}
func (NopObserver) MergeReverted(core.NodeID, core.NodeID)           {}
func (NopObserver) Promoted(core.NodeID)                             {}
func (NopObserver) Folded(core.NodeID, core.NodeID)                  {}

// Options configures a Generalizer.
type Options[A any] struct {
	// Skip is the terminal action put on every edge into Exit.
	Skip A

	// ActionCost ranks actions when ordering nodes. Nil means all actions cost 0.
	ActionCost func(A) float64

	// Logger receives Debug events for every merge decision. Nil disables logging.
	Logger *slog.Logger

	// Observer receives search events. Nil means NopObserver.
	Observer Observer

	// MaxNodes bounds the CFG size during trace extension; 0 means unbounded.
	MaxNodes int
}

// DefaultOptions returns options with the given terminal action and no limits.
func DefaultOptions[A any](skip A) Options[A] {
	return Options[A]{
		Skip:       skip,
		ActionCost: func(A) float64 { return 0 },
		Logger:     logging.NewNop(),
		Observer:   NopObserver{},
	}
}

func (o *Options[A]) normalize() {
	if o.ActionCost == nil {
		o.ActionCost = func(A) float64 { return 0 }
	}
	if o.Logger == nil {
		o.Logger = logging.NewNop()
	}
	if o.Observer == nil {
		o.Observer = NopObserver{}
	}
}
