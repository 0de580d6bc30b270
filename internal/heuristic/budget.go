package heuristic

import "SmartSaver/internal/model"

// CalcBudget computes a simple envelope budget from income and the user's
// target savings rate. The savings slice follows the user's preference
// (clamped to the policy ceiling); the remainder is rebalanced between
// essentials and wants in the default 5:3 proportion.
func CalcBudget(s *model.UserState, p Policy) model.Budget {
	income := s.Income
	if income < 0 {
		income = 0
	}
	savingsRatio := clamp(s.SavingsRate, 0, p.MaxSavingsSlice)

	remain := 1.0 - savingsRatio
	if remain < 0 {
		remain = 0
	}
	nonSavings := p.BudgetRule.Essentials + p.BudgetRule.Wants
	essentialsRatio := remain * (p.BudgetRule.Essentials / nonSavings)
	wantsRatio := remain * (p.BudgetRule.Wants / nonSavings)

	return model.Budget{
		Essentials: round2(income * essentialsRatio),
		Wants:      round2(income * wantsRatio),
		Savings:    round2(income * savingsRatio),
	}
}
