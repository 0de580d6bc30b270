package agent

import (
	"fmt"
	"math"

	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/model"
)

// SavingsAgent surfaces low-friction saving opportunities and suggests a
// fixed-date auto-transfer amount from the current savings rate. The
// suggestion is stashed on state for the goal agent.
type SavingsAgent struct{}

func (a *SavingsAgent) Name() string { return "Savings Agent" }

func (a *SavingsAgent) Step(state *model.UserState) (*model.UserState, string, error) {
	ideas := heuristic.FindMicroSavings(state)
	state.SavingsSuggestions = ideas

	autosave := math.Round(state.Income * state.SavingsRate)
	state.SuggestedAutosave = &autosave

	var msg string
	if len(ideas) > 0 {
		msg = fmt.Sprintf("Found %d micro-savings (e.g., “%s”). Recommend auto-transfer of %s on the 1st each month.",
			len(ideas), ideas[0].Tip, heuristic.INR(autosave))
	} else {
		msg = fmt.Sprintf("No obvious waste detected. Still recommend auto-transfer of %s on the 1st each month.",
			heuristic.INR(autosave))
	}
	return state, msg, nil
}
