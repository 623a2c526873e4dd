// Package automaton holds the update-deterministic program automaton: states
// carry trace points, transitions carry plain updates, and every state must
// end up with at most one out-edge per update.
//
// Determinization:
//
//	IsStateUpdateDeterministic(s)  – no two out-edges of s share an update
//	MakeUpdateDeterministic(s)     – merge the targets of each shared update,
//	                                 then keep one edge per update
//	Fold(s)                        – MakeUpdateDeterministic(s) and, if that
//	                                 changed anything, Fold every successor
//
// Merging:
//
//	MergeState(src, dst)   – absorb src into dst; src may not be Initial,
//	                         neither side may be Final
//	MergeStates(batch)     – merge a batch into one survivor; Initial, when
//	                         present, is the survivor; Final may not appear
//
// Precondition violations return ErrMergeFinal / ErrMergeInitial before the
// automaton is touched.
package automaton
