// Package agent defines the uniform step contract every coaching agent
// implements, and a name registry the pipeline resolves agents from.
package agent

import (
	"fmt"
	"sort"

	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/model"
)

// Agent is the uniform step contract: take the current state, mutate the
// designated fields, and return the state to use for the next step plus a
// short feed message. Implementations must tolerate the zero/default state.
type Agent interface {
	Name() string
	Step(state *model.UserState) (*model.UserState, string, error)
}

// Factory builds a fresh agent instance. Resolving a name always goes
// through a factory so no state leaks between runs.
type Factory func(p heuristic.Policy) Agent

// DefaultOrder is the canonical full-pipeline ordering: advice runs last
// because it reads the budget, and goals after savings because it reads the
// autosave suggestion.
var DefaultOrder = []string{"budget", "debt", "savings", "goals", "alerts", "advice"}

var factories = map[string]Factory{
	"budget":  func(p heuristic.Policy) Agent { return &BudgetAgent{Policy: p} },
	"debt":    func(p heuristic.Policy) Agent { return &DebtAgent{} },
	"savings": func(p heuristic.Policy) Agent { return &SavingsAgent{} },
	"goals":   func(p heuristic.Policy) Agent { return &GoalAgent{} },
	"alerts":  func(p heuristic.Policy) Agent { return &AlertAgent{Policy: p} },
	"advice":  func(p heuristic.Policy) Agent { return &AdviceAgent{} },
}

// Registry resolves agent names to fresh instances configured with one
// policy.
type Registry struct {
	policy heuristic.Policy
}

// NewRegistry returns a registry whose agents use the given policy.
func NewRegistry(p heuristic.Policy) *Registry {
	return &Registry{policy: p}
}

// Resolve returns a new instance of the named agent. Unknown names are
// reported as errors, never panics; callers surface them as warnings.
func (r *Registry) Resolve(name string) (Agent, error) {
	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown agent %q", name)
	}
	return f(r.policy), nil
}

// Names lists all registered agent names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
