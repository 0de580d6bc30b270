package heuristic

import (
	"math"

	"SmartSaver/internal/model"
)

// SuggestStarterGoals creates a sensible first set of goals from income and
// open debts: roughly three months of income as an emergency buffer, plus a
// cushion for extra debt payments when any debt exists.
func SuggestStarterGoals(s *model.UserState) []model.Goal {
	income := s.Income
	if income <= 0 {
		income = 60000
	}
	// ~3 months of income, rounded to the nearest thousand, floored at 50k.
	emergencyTarget := math.Max(50000, math.Round(income*3/1000)*1000)

	goals := []model.Goal{
		{Name: "Emergency Fund", Target: emergencyTarget, Deadline: "2026-03-31", Saved: 0},
	}
	if len(s.Debts) > 0 {
		goals = append(goals, model.Goal{
			Name:     "Debt Cushion",
			Target:   math.Min(30000, emergencyTarget*0.4),
			Deadline: "2025-12-31",
			Saved:    0,
		})
	}
	return goals
}

// UpdateGoalProgress applies a conservative share of the suggested autosave
// (or of savings_rate * income when no autosave is set) to each goal,
// clamping saved at target.
func UpdateGoalProgress(s *model.UserState) []model.Goal {
	goals := make([]model.Goal, len(s.Goals))
	copy(goals, s.Goals)
	if len(goals) == 0 {
		return goals
	}

	var contribution float64
	if s.SuggestedAutosave != nil && *s.SuggestedAutosave > 0 {
		contribution = *s.SuggestedAutosave * 0.25
	} else {
		contribution = s.Income * s.SavingsRate
	}

	for i := range goals {
		if goals[i].Target <= 0 {
			continue
		}
		goals[i].Saved += contribution * 0.3
		if goals[i].Saved > goals[i].Target {
			goals[i].Saved = goals[i].Target
		}
	}
	return goals
}
