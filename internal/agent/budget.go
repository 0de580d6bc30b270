package agent

import (
	"fmt"

	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/model"
)

// BudgetAgent computes the monthly envelope budget and updates the
// effective savings rate to match the savings slice.
type BudgetAgent struct {
	Policy heuristic.Policy
}

func (a *BudgetAgent) Name() string { return "Budget Agent" }

func (a *BudgetAgent) Step(state *model.UserState) (*model.UserState, string, error) {
	budget := heuristic.CalcBudget(state, a.Policy)
	state.Budget = budget

	if state.Income > 0 {
		state.SavingsRate = budget.Savings / state.Income
	} else {
		state.SavingsRate = 0
	}

	msg := fmt.Sprintf("Set your monthly budget → Essentials %s, Wants %s, Savings %s (%.0f%%).",
		heuristic.INR(budget.Essentials),
		heuristic.INR(budget.Wants),
		heuristic.INR(budget.Savings),
		state.SavingsRate*100)
	return state, msg, nil
}
