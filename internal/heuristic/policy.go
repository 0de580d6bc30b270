package heuristic

// Policy carries the soft thresholds the calculators work against.
// Values mirror configs/policy defaults; the config layer may override them.
type Policy struct {
	// Budget envelope ratios used when the user has no savings preference.
	BudgetRule struct {
		Essentials float64
		Wants      float64
		Savings    float64
	}
	// Soft per-category spending limits as a fraction of income.
	CategoryLimits map[string]float64
	// Grace added on top of a category limit before an alert fires (0.10 = 10%).
	OverspendGrace float64
	// Upper clamp for the savings slice of the budget.
	MaxSavingsSlice float64
}

// DefaultPolicy returns the built-in thresholds so the app runs without a
// config file.
func DefaultPolicy() Policy {
	p := Policy{
		CategoryLimits: map[string]float64{
			"groceries":     0.12,
			"dining":        0.08,
			"shopping":      0.07,
			"transport":     0.06,
			"entertainment": 0.05,
		},
		OverspendGrace:  0.10,
		MaxSavingsSlice: 0.90,
	}
	p.BudgetRule.Essentials = 0.50
	p.BudgetRule.Wants = 0.30
	p.BudgetRule.Savings = 0.20
	return p
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
