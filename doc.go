// Package tracefold learns compact, cyclic control-flow automata from
// concrete execution traces.
//
// Given example runs of a program (states connected by actions), tracefold
// builds a prefix tree and merges its states red/blue style, accepting a
// merge only when every branching node can still carry a guard that
// separates the values observed on each branch.
//
// Layout:
//
//	core/       — labeled multigraph arena with an undo journal (Begin/Commit/Revert)
//	bfs/, dfs/  — traversals over core.Graph (reachability, back edges)
//	trace/      — immutable runs (Plan)
//	separation/ — guard inference and cost strategies
//	cfg/        — control-flow graph with trace-augmented nodes
//	rpni/       — trace extension, red/blue merge search, cascading fold
//	automaton/  — update-deterministic automaton and its determinizer
//	ints/       — integer-store domain (stores, statements, comparison guards)
//	dot/        — Graphviz export
//	metrics/    — Prometheus counters for the merge search
//	config/     — YAML settings and trace files
//	learn/      — concurrent file-to-report pipeline
//	cmd/tracefold — CLI
//
// Quick example:
//
//	s0 -a-> s1 -b-> s2
//	s0 -a-> s1'-c-> s3     ⇒   entry -a-> n1 -b [v<3]-> …
//	                                       └-c [v>=3]-> …
package tracefold

// Version is the release version reported by the CLI.
const Version = "0.1.0"
