// Package rpni generalizes execution traces into a cyclic control-flow graph
// by red/blue state merging.
//
// Pipeline (Generalize):
//
//  1. ExtendPTP threads every trace through the CFG, sharing common action
//     prefixes (a prefix-tree acceptor) and ending each run with the
//     terminal action into Exit.
//  2. Search runs the red/blue merge search. RED starts as {Entry}; BLUE is
//     the frontier of RED successors. The least BLUE node is tentatively
//     merged into each RED node in order, the result is folded, conditions
//     are re-inferred and the merge is committed on the FIRST red node that
//     gives a finite total cost. A blue node no red node accepts is promoted.
//  3. Conditions are inferred one last time; a finite total cost yields OK,
//     anything else ConditionInferenceFailure.
//
// Ordering:
//
//	Nodes are ordered by the canonical path recorded when they were created:
//	shorter paths first, then, at the first differing action, the cheaper
//	action (Options.ActionCost), then the action text. The order decides
//	which red candidate is tried first, so it changes the learned automaton.
//
// Fold:
//
//	After a merge a node may have several out-edges with the same action and
//	different targets. Fold merges those targets, transitively, with the more
//	settled node (RED over BLUE over uncolored) surviving. Entry always survives.
//
// Concurrency: a Generalizer may be shared, but each CFG must be driven by
// one goroutine at a time.
package rpni
