package heuristic

import (
	"fmt"
	"math"
	"sort"

	"SmartSaver/internal/model"
)

// PayoffPlan builds an ordered payoff plan for the given debts.
// Avalanche orders by highest APR first (balance breaks ties); snowball by
// smallest balance first (APR breaks ties). The recommended-total and
// interest-saved figures are rough coaching heuristics, not amortization
// math; income > 0 biases the recommended total up to 12% of income.
func PayoffPlan(debtsIn []model.Debt, method model.DebtStrategy, income float64) model.DebtPlan {
	if method != model.StrategySnowball {
		method = model.StrategyAvalanche
	}
	if len(debtsIn) == 0 {
		return model.DebtPlan{
			Method:         method,
			Order:          []model.DebtOutlook{},
			Schedule:       []model.PaymentLine{},
			Recommendation: "No debts found.",
		}
	}

	debts := make([]model.Debt, len(debtsIn))
	copy(debts, debtsIn)

	if method == model.StrategySnowball {
		sort.SliceStable(debts, func(i, j int) bool {
			if debts[i].Balance != debts[j].Balance {
				return debts[i].Balance < debts[j].Balance
			}
			return debts[i].APR > debts[j].APR
		})
	} else {
		sort.SliceStable(debts, func(i, j int) bool {
			if debts[i].APR != debts[j].APR {
				return debts[i].APR > debts[j].APR
			}
			return debts[i].Balance < debts[j].Balance
		})
	}

	focus := debts[0]
	totalMin := 0.0
	for _, d := range debts {
		totalMin += d.MinPayment
	}

	recommendedTotal := math.Max(totalMin, focus.Balance*0.10/12)
	if income > 0 {
		recommendedTotal = math.Max(recommendedTotal, 0.12*income)
	}
	focusExtra := math.Max(0, recommendedTotal-totalMin)

	schedule := make([]model.PaymentLine, 0, len(debts))
	scheduleTotal := 0.0
	for i, d := range debts {
		strategy := "min"
		amount := d.MinPayment
		if i == 0 {
			strategy = "min+extra"
			amount += focusExtra
		}
		amount = round2(amount)
		scheduleTotal += amount
		schedule = append(schedule, model.PaymentLine{Debt: d.Name, Strategy: strategy, Amount: amount})
	}

	// Rough interest saved vs paying only minimums for a year.
	meanAPR := 0.0
	for _, d := range debts {
		meanAPR += d.APR
	}
	meanAPR /= float64(len(debts))
	interestSaved := round2(focusExtra * 12 * meanAPR * 0.5)

	order := make([]model.DebtOutlook, 0, len(debts))
	for i, d := range debts {
		monthly := d.MinPayment
		if i == 0 {
			monthly += focusExtra
		}
		if monthly < 1 {
			monthly = 1
		}
		months := int(math.Max(1, math.Round(d.Balance/monthly)))
		order = append(order, model.DebtOutlook{Name: d.Name, Balance: d.Balance, APR: d.APR, MonthsEst: months})
	}

	return model.DebtPlan{
		Method:                  method,
		NextFocus:               model.NextFocus{Name: focus.Name, ExtraPayment: round2(focusExtra)},
		Order:                   order,
		ProjectedInterestSaved:  interestSaved,
		RecommendedTotalPayment: round2(scheduleTotal),
		Schedule:                schedule,
		Recommendation:          fmt.Sprintf("Pay minimums on all, then add %s to **%s**.", INR(focusExtra), focus.Name),
	}
}
