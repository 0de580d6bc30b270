package heuristic

import (
	"sort"

	"SmartSaver/internal/model"
)

// FindMicroSavings produces small, actionable saving ideas. A real app
// would inspect recent transactions and subscriptions; the demo ranks a
// fixed list by estimated saving, weighted up under spending pressure.
func FindMicroSavings(s *model.UserState) []model.SavingsTip {
	income := s.Income
	denom := income
	if denom < 1 {
		denom = 1
	}
	pressure := clamp((s.MonthlySpend-0.9*income)/denom, 0, 0.5)

	ideas := []model.SavingsTip{
		{Tip: "Round-up transfers: auto-save spare change from each txn", EstMonthlySaving: 300},
		{Tip: "Switch to a lower-cost mobile/data plan", EstMonthlySaving: 250},
		{Tip: "Cancel one unused subscription", EstMonthlySaving: 400},
		{Tip: "Buy staples in bulk (rice, lentils, oil)", EstMonthlySaving: 200},
		{Tip: "Shift dining-out to once a week", EstMonthlySaving: 600},
	}

	sort.SliceStable(ideas, func(i, j int) bool {
		return ideas[i].EstMonthlySaving*(1+pressure) > ideas[j].EstMonthlySaving*(1+pressure)
	})
	if len(ideas) > 5 {
		ideas = ideas[:5]
	}
	return ideas
}
