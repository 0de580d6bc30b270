package agent

import (
	"fmt"

	"SmartSaver/internal/heuristic"
	"SmartSaver/internal/model"
)

// DebtAgent picks the payoff strategy from state and produces a next-action
// focus with a high-level timeline.
type DebtAgent struct{}

func (a *DebtAgent) Name() string { return "Debt Agent" }

func (a *DebtAgent) Step(state *model.UserState) (*model.UserState, string, error) {
	plan := heuristic.PayoffPlan(state.Debts, state.DebtStrategy, state.Income)
	state.DebtPlan = plan

	if len(plan.Order) == 0 {
		return state, fmt.Sprintf("Using %s method. %s", plan.Method, plan.Recommendation), nil
	}

	extraTxt := ""
	if plan.NextFocus.ExtraPayment > 0 {
		extraTxt = fmt.Sprintf(" with extra %s", heuristic.INR(plan.NextFocus.ExtraPayment))
	}
	savedTxt := ""
	if plan.ProjectedInterestSaved > 0 {
		savedTxt = fmt.Sprintf(" Est. interest saved %s.", heuristic.INR(plan.ProjectedInterestSaved))
	}

	msg := fmt.Sprintf("Using %s method. Next focus: %s%s.%s",
		plan.Method, plan.NextFocus.Name, extraTxt, savedTxt)
	return state, msg, nil
}
