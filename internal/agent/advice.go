package agent

import (
	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/model"
)

// AdviceAgent closes the run with a coach-style summary. It only reads
// state; in production this would call an LLM behind guardrails.
type AdviceAgent struct{}

func (a *AdviceAgent) Name() string { return "Advice Agent" }

func (a *AdviceAgent) Step(state *model.UserState) (*model.UserState, string, error) {
	return state, heuristic.GenerateAdvice(state), nil
}
