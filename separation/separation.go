// SPDX-License-Identifier: MIT
//
// File: separation.go
// Role: Domain, Inferencer and Cost contracts plus the linear inferencer.

package separation

import "math"

// Infinity marks an unrealizable condition assignment.
var Infinity = math.Inf(1)

// IsInfinite reports whether c is the Infinity sentinel (or any +Inf).
func IsInfinite(c float64) bool { return math.IsInf(c, 1) }

// Domain evaluates guards over values.
type Domain[V, G any] interface {
	Test(guard G, value V) bool
}

// DomainFunc adapts a function to Domain.
type DomainFunc[V, G any] func(guard G, value V) bool

// Test implements Domain.
func (f DomainFunc[V, G]) Test(guard G, value V) bool { return f(guard, value) }

// Inferencer proposes a guard satisfied by every element of first and by no
// element of second. ok is false when the strategy finds none.
type Inferencer[V, G any] interface {
	Infer(first, second []V) (guard G, ok bool)
}

// InferencerFunc adapts a function to Inferencer.
type InferencerFunc[V, G any] func(first, second []V) (G, bool)

// Infer implements Inferencer.
func (f InferencerFunc[V, G]) Infer(first, second []V) (G, bool) { return f(first, second) }

// Cost scores a guard. A nil guard means the edge carries no condition.
type Cost[G any] func(guard *G) float64

// Linear iterates over a fixed list of guards and returns the first one
// that separates.
type Linear[V, G any] struct {
	domain Domain[V, G]
	guards []G
}

// NewLinear returns a Linear inferencer over a copy of guards.
func NewLinear[V, G any](domain Domain[V, G], guards []G) *Linear[V, G] {
	cp := make([]G, len(guards))
	copy(cp, guards)

	return &Linear[V, G]{domain: domain, guards: cp}
}

// Infer implements Inferencer. Complexity: O(|guards|·(|first|+|second|)).
func (l *Linear[V, G]) Infer(first, second []V) (G, bool) {
	for _, g := range l.guards {
		if l.separates(g, first, second) {
			return g, true
		}
	}
	var zero G

	return zero, false
}

func (l *Linear[V, G]) separates(g G, first, second []V) bool {
	for _, v := range first {
		if !l.domain.Test(g, v) {
			return false
		}
	}
	for _, v := range second {
		if l.domain.Test(g, v) {
			return false
		}
	}

	return true
}

// CostBadConditions charges Infinity for a missing guard and nothing otherwise.
func CostBadConditions[G any]() Cost[G] {
	return func(g *G) float64 {
		if g == nil {
			return Infinity
		}
		return 0
	}
}

// CostSize charges size(guard); a missing guard costs nothing.
func CostSize[G any](size func(G) int) Cost[G] {
	return func(g *G) float64 {
		if g == nil {
			return 0
		}
		return float64(size(*g))
	}
}

// CostSum adds the given costs. Any infinite term makes the sum Infinity.
func CostSum[G any](costs ...Cost[G]) Cost[G] {
	return func(g *G) float64 {
		total := 0.0
		for _, c := range costs {
			v := c(g)
			if IsInfinite(v) {
				return Infinity
			}
			total += v
		}
		return total
	}
}
