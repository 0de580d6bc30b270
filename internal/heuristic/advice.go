package heuristic

import (
	"fmt"
	"strings"

	"SmartSaver/internal/model"
)

// GenerateAdvice produces the coach's closing one-liner. It reads the
// budget the budget agent wrote earlier in the run; when that is empty it
// falls back to savings_rate * income.
func GenerateAdvice(s *model.UserState) string {
	savingsAmt := s.Budget.Savings
	if savingsAmt == 0 {
		savingsAmt = s.Income * s.SavingsRate
	}

	var tips []string
	if s.SavingsRate < 0.10 {
		tips = append(tips, "try nudging your savings rate up by 1-2% this month")
	}
	if s.MonthlySpend > s.Income*0.9 {
		tips = append(tips, "trim one discretionary category by ~10%")
	}
	if len(s.Debts) > 0 {
		tips = append(tips, "keep extra payments focused on the current target account")
	}

	suffix := ""
	if len(tips) > 0 {
		suffix = " Tip: " + strings.Join(tips, "; ") + "."
	}
	return fmt.Sprintf("You're doing well. Keep an automatic transfer of %s on the 1st, review subscriptions quarterly, and stay consistent.%s",
		INR(savingsAmt), suffix)
}
