// Package cfg is the control-flow graph the generalizer learns.
//
// A CFG is a core.Graph whose nodes are State values and whose edges are
// Transition labels:
//
//	State       = trace points that reached the node + canonical path from Entry
//	Transition  = action + optional guard
//
// Entry and Exit are created by New and live for the lifetime of the CFG.
// Exit is never merged; Entry is never absorbed (it may absorb other nodes).
//
// Merges are speculative. The first MergeNodes after a commit or revert opens
// a transaction; every mutation up to CommitMerges or RevertMerges is
// journaled, and RevertMerges restores nodes, edges, guards, trace points and
// paths exactly.
//
// Condition inference (InferConditions) puts a guard on every out-edge of a
// branching node (out-degree ≥ 2): the guard must accept the values of the
// node's points that left along that edge's action and reject the others.
// ConditionsCost scores the result; a branching node with a missing guard
// makes the whole graph cost Infinity.
package cfg
