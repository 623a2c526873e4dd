// Package separation defines the collaborators the generalizer uses to put
// conditions on branches, and a few stock implementations.
//
//   - Domain[V, G]      tests whether a value satisfies a guard.
//   - Inferencer[V, G]  proposes a guard accepted by every value of one set
//     and by no value of another.
//   - Cost[G]           scores a guard, or its absence (nil), as a
//     non-negative float or Infinity.
//
// Stock strategies:
//
//	NewLinear(domain, guards)   // first guard from a fixed list that separates
//	CostBadConditions()         // Infinity for a missing guard, else 0
//	CostSize(size)              // size(guard), 0 for a missing guard
//	CostSum(costs...)           // pointwise sum, Infinity absorbs
package separation
