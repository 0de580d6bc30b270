package agent

import (
	"fmt"
	"strings"

	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/model"
)

// GoalAgent seeds starter goals on the first run, then nudges progress on
// each later run using the savings agent's autosave suggestion.
type GoalAgent struct{}

func (a *GoalAgent) Name() string { return "Goal Agent" }

func (a *GoalAgent) Step(state *model.UserState) (*model.UserState, string, error) {
	if len(state.Goals) == 0 {
		state.Goals = heuristic.SuggestStarterGoals(state)
		names := make([]string, len(state.Goals))
		for i, g := range state.Goals {
			names[i] = g.Name
		}
		return state, fmt.Sprintf("Created starter goals: %s.", strings.Join(names, ", ")), nil
	}

	state.Goals = heuristic.UpdateGoalProgress(state)
	for _, g := range state.Goals {
		if g.Target <= 0 {
			continue
		}
		pct := int(100 * g.Saved / g.Target)
		msg := fmt.Sprintf("Updated goals. Closest: **%s** at %d%% (by %s).", g.Name, pct, g.Deadline)
		return state, msg, nil
	}
	return state, "Updated goals.", nil
}
