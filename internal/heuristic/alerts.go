package heuristic

import (
	"fmt"
	"strings"

	"SmartSaver/internal/model"
)

// estSplitRatios is a naive split of monthly spend across categories,
// standing in until real category sums come from the transaction store.
var estSplitRatios = []struct {
	Category string
	Ratio    float64
}{
	{"groceries", 0.20},
	{"dining", 0.12},
	{"shopping", 0.10},
	{"transport", 0.08},
	{"entertainment", 0.06},
}

// DetectOverspendAlerts compares estimated category spend against the
// policy's soft limits (as a fraction of income, with grace on top).
// Zero income means no meaningful caps, so no alerts.
func DetectOverspendAlerts(s *model.UserState, p Policy) []model.Alert {
	if s.Income <= 0 {
		return nil
	}

	alerts := []model.Alert{}
	for _, split := range estSplitRatios {
		spent := s.MonthlySpend * split.Ratio
		limit, ok := p.CategoryLimits[split.Category]
		if !ok {
			limit = 0.07
		}
		softCap := s.Income * limit * (1 + p.OverspendGrace)
		if spent > softCap {
			alerts = append(alerts, model.Alert{
				Category: split.Category,
				Spent:    round2(spent),
				SoftCap:  round2(softCap),
				Message: fmt.Sprintf("%s spend %s is above your soft cap %s. Try 10%% less next month.",
					title(split.Category), INR(spent), INR(softCap)),
			})
		}
	}
	return alerts
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
