package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tracefold/ints"
	"github.com/katalvlaran/tracefold/trace"
)

// Plan is an integer-store trace.
type Plan = trace.Plan[ints.Store, ints.Stmt]

// TraceFile is the on-disk shape of a trace file:
//
//	traces:
//	  - first: {i: 0, n: 2}
//	    steps:
//	      - {action: "i = i + 1", state: {i: 1, n: 2}}
type TraceFile struct {
	Traces []TraceSpec `yaml:"traces"`
}

// TraceSpec is one run.
type TraceSpec struct {
	First ints.Store `yaml:"first"`
	Steps []StepSpec `yaml:"steps"`
}

// StepSpec is one step of a run.
type StepSpec struct {
	Action string     `yaml:"action"`
	State  ints.Store `yaml:"state"`
}

// LoadTraces reads a trace file. A trace without a first state is rejected;
// an empty steps list is a single-state run.
func LoadTraces(path string) ([]Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return ParseTraces(data)
}

// ParseTraces decodes trace YAML.
func ParseTraces(data []byte) ([]Plan, error) {
	var f TraceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("config: parse traces: %w", err)
	}

	plans := make([]Plan, 0, len(f.Traces))
	for i, t := range f.Traces {
		if t.First == nil {
			return nil, fmt.Errorf("%w: trace %d has no first state", ErrInvalid, i)
		}
		steps := make([]trace.Step[ints.Store, ints.Stmt], 0, len(t.Steps))
		for j, s := range t.Steps {
			if s.Action == "" {
				return nil, fmt.Errorf("%w: trace %d step %d has no action", ErrInvalid, i, j)
			}
			if s.State == nil {
				s.State = ints.Store{}
			}
			steps = append(steps, trace.Step[ints.Store, ints.Stmt]{Action: ints.Stmt(s.Action), State: s.State})
		}
		plans = append(plans, trace.New(t.First, steps...))
	}

	return plans, nil
}

// Variables returns the sorted set of variable names used by plans.
func Variables(plans []Plan) []string {
	seen := map[string]struct{}{}
	add := func(s ints.Store) {
		for k := range s {
			seen[k] = struct{}{}
		}
	}
	for _, p := range plans {
		if first, ok := p.FirstState(); ok {
			add(first)
		}
		p.Each(func(_ int, _ ints.Store, _ ints.Stmt, to ints.Store) { add(to) })
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
