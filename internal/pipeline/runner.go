// Package pipeline executes an ordered list of agents against one shared
// state, left to right, isolating each step's failure from the rest of the
// run.
package pipeline

import (
	"fmt"
	"log"

	"SmartSaver/internal/agent"
	"SmartSaver/internal/model"
)

// Run invokes each agent in order, threading the returned state into the
// next step. Every attempted step yields exactly one message; a step that
// fails (error or panic) yields an error message built against the state as
// it stood before that step advanced it, and the run continues. Nothing
// escapes Run.
func Run(agents []agent.Agent, state *model.UserState) (*model.UserState, []model.Message) {
	messages := make([]model.Message, 0, len(agents))
	for _, a := range agents {
		next, msg, err := step(a, state)
		if err != nil {
			messages = append(messages, model.Message{
				Agent:   a.Name(),
				Content: fmt.Sprintf("⚠️ Error: %v", err),
			})
			continue
		}
		if next != nil {
			state = next
		}
		messages = append(messages, model.Message{Agent: a.Name(), Content: msg})
	}
	return state, messages
}

// RunNames resolves each name through the registry and runs the resolved
// agents in the given order. Names that do not resolve are excluded from
// the run and reported back as warnings, never as failures.
func RunNames(reg *agent.Registry, names []string, state *model.UserState) (*model.UserState, []model.Message, []string) {
	agents := make([]agent.Agent, 0, len(names))
	var warnings []string
	for _, name := range names {
		a, err := reg.Resolve(name)
		if err != nil {
			log.Printf("[WARN] skipping agent: %v", err)
			warnings = append(warnings, err.Error())
			continue
		}
		agents = append(agents, a)
	}
	state, messages := Run(agents, state)
	return state, messages, warnings
}

// step is the guarded invocation: a panicking agent is reported as an
// error, not propagated.
func step(a agent.Agent, state *model.UserState) (next *model.UserState, msg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			next, msg = nil, ""
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return a.Step(state)
}
