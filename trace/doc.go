// Package trace holds Plan, the immutable unit of evidence fed to the
// generalizer: a first state followed by (action, resulting state) steps.
//
//	s0 -a-> s1 -b-> s2   ==   trace.New(s0, Step{a, s1}, Step{b, s2})
//
// A Plan with n steps has n+1 states. The zero Plan is the empty trace and
// has no states at all. Plans copy their input and never hand out their
// backing slices, so callers cannot mutate one after construction.
package trace
