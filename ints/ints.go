// Package ints is a small integer-store domain for the generalizer: values
// are variable stores, actions are statement texts and guards compare a
// variable with a constant or with another variable.
package ints

import (
	"fmt"
	"sort"
	"strconv"
)

// Skip is the terminal statement.
const Skip Stmt = "skip"

// Store maps variable names to values. Missing variables read as 0.
type Store map[string]int

// String renders the store with sorted keys, e.g. "{i=1 n=3}".
func (s Store) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	b := []byte{'{'}
	for i, k := range keys {
		if i > 0 {
			b = append(b, ' ')
		}
		b = append(b, k...)
		b = append(b, '=')
		b = strconv.AppendInt(b, int64(s[k]), 10)
	}

	return string(append(b, '}'))
}

// Stmt is an opaque statement; two statements are equal iff their text is.
type Stmt string

// String implements cfg.Action.
func (s Stmt) String() string { return string(s) }

// Op is a comparison operator.
type Op string

// Supported operators.
const (
	Lt Op = "<"
	Le Op = "<="
	Eq Op = "=="
	Ne Op = "!="
	Gt Op = ">"
	Ge Op = ">="
)

// Ops lists every operator in a fixed order.
var Ops = []Op{Lt, Le, Eq, Ne, Gt, Ge}

// ParseOp validates an operator token.
func ParseOp(s string) (Op, error) {
	for _, op := range Ops {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("ints: unknown operator %q", s)
}

func (op Op) eval(l, r int) bool {
	switch op {
	case Lt:
		return l < r
	case Le:
		return l <= r
	case Eq:
		return l == r
	case Ne:
		return l != r
	case Gt:
		return l > r
	case Ge:
		return l >= r
	default:
		return false
	}
}

// Guard is "Var Op Const", or "Var Op Rhs" when Rhs is set.
type Guard struct {
	Var   string
	Op    Op
	Const int
	Rhs   string
}

// Test reports whether s satisfies g.
func (g Guard) Test(s Store) bool {
	r := g.Const
	if g.Rhs != "" {
		r = s[g.Rhs]
	}
	return g.Op.eval(s[g.Var], r)
}

// Size is the number of tokens in the guard.
func (g Guard) Size() int { return 3 }

// String renders the guard, e.g. "i < 3".
func (g Guard) String() string {
	if g.Rhs != "" {
		return fmt.Sprintf("%s %s %s", g.Var, g.Op, g.Rhs)
	}
	return fmt.Sprintf("%s %s %d", g.Var, g.Op, g.Const)
}

// Domain implements separation.Domain for stores and guards.
type Domain struct{}

// Test implements separation.Domain.
func (Domain) Test(g Guard, s Store) bool { return g.Test(s) }

// Candidates enumerates atomic guards: every variable against every
// constant, then every ordered pair of distinct variables, each with every
// operator in ops. The order is deterministic and shorter/simpler guards
// come first.
func Candidates(vars []string, consts []int, ops []Op) []Guard {
	var out []Guard
	for _, v := range vars {
		for _, c := range consts {
			for _, op := range ops {
				out = append(out, Guard{Var: v, Op: op, Const: c})
			}
		}
	}
	for _, v := range vars {
		for _, w := range vars {
			if v == w {
				continue
			}
			for _, op := range ops {
				out = append(out, Guard{Var: v, Op: op, Rhs: w})
			}
		}
	}

	return out
}
