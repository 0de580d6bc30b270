package model

// Budget is the monthly envelope split produced by the budget agent.
type Budget struct {
	Essentials float64 `json:"essentials"`
	Wants      float64 `json:"wants"`
	Savings    float64 `json:"savings"`
}

// Total returns the sum of all envelopes.
func (b Budget) Total() float64 {
	return b.Essentials + b.Wants + b.Savings
}

// SavingsTip is a single micro-savings suggestion.
type SavingsTip struct {
	Tip              string  `json:"tip"`
	EstMonthlySaving float64 `json:"estimated_monthly_saving"`
}

// Goal is a savings goal with a target amount and deadline.
type Goal struct {
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Deadline string  `json:"deadline"` // YYYY-MM-DD
	Saved    float64 `json:"saved"`
}

// Alert flags a spending category that exceeded its soft cap.
type Alert struct {
	Category string  `json:"category"`
	Spent    float64 `json:"spent"`
	SoftCap  float64 `json:"soft_cap"`
	Message  string  `json:"message"`
}

// UserState is the financial snapshot shared by all agents. It is owned by
// exactly one pipeline run at a time; agents read any field and overwrite
// their designated ones.
type UserState struct {
	// Monthly snapshot (INR)
	Income       float64 `json:"income"`
	MonthlySpend float64 `json:"monthly_spend"`
	SavingsRate  float64 `json:"savings_rate"` // 0..1

	// Agent-populated fields
	Budget             Budget       `json:"budget"`
	SavingsSuggestions []SavingsTip `json:"savings_suggestions"`
	SuggestedAutosave  *float64     `json:"suggested_autosave"`

	// Debts
	Debts        []Debt       `json:"debts"`
	DebtStrategy DebtStrategy `json:"debt_strategy"`
	DebtPlan     DebtPlan     `json:"debt_plan"`

	// Goals & alerts
	Goals  []Goal  `json:"goals"`
	Alerts []Alert `json:"alerts"`
}

// DefaultState returns a fresh state with demo defaults.
func DefaultState() *UserState {
	return &UserState{
		Income:       60000,
		MonthlySpend: 45000,
		SavingsRate:  0.15,
		Debts: []Debt{
			{Name: "Credit Card", Balance: 30000, APR: 0.36, MinPayment: 1500},
			{Name: "Student Loan", Balance: 120000, APR: 0.11, MinPayment: 2500},
		},
		DebtStrategy: StrategyAvalanche,
	}
}

// Normalize clamps numeric fields back into their documented ranges.
// Out-of-range values are repaired, never rejected.
func (s *UserState) Normalize() {
	if s.Income < 0 {
		s.Income = 0
	}
	if s.MonthlySpend < 0 {
		s.MonthlySpend = 0
	}
	if s.SavingsRate < 0 {
		s.SavingsRate = 0
	}
	if s.SavingsRate > 1 {
		s.SavingsRate = 1
	}
	if s.DebtStrategy != StrategySnowball {
		s.DebtStrategy = StrategyAvalanche
	}
}

// Snapshot converts the state to a plain mapping for display and
// persistence. Every field is present, defaults filled in.
func (s *UserState) Snapshot() map[string]any {
	return map[string]any{
		"income":              s.Income,
		"monthly_spend":       s.MonthlySpend,
		"savings_rate":        s.SavingsRate,
		"budget":              s.Budget,
		"savings_suggestions": s.SavingsSuggestions,
		"suggested_autosave":  s.SuggestedAutosave,
		"debts":               s.Debts,
		"debt_strategy":       s.DebtStrategy,
		"debt_plan":           s.DebtPlan,
		"goals":               s.Goals,
		"alerts":              s.Alerts,
	}
}
