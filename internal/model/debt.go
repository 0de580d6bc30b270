package model

// DebtStrategy selects the payoff ordering.
type DebtStrategy string

const (
	StrategyAvalanche DebtStrategy = "avalanche" // highest APR first
	StrategySnowball  DebtStrategy = "snowball"  // smallest balance first
)

// Debt is a single liability in the user's snapshot.
type Debt struct {
	Name       string  `json:"name"`
	Balance    float64 `json:"balance"`
	APR        float64 `json:"apr"` // decimal, e.g. 0.24
	MinPayment float64 `json:"min_payment"`
}

// NextFocus names the account all extra payment should go to.
type NextFocus struct {
	Name         string  `json:"name"`
	ExtraPayment float64 `json:"extra_payment"`
}

// DebtOutlook is one entry of the payoff order with a rough timeline.
type DebtOutlook struct {
	Name      string  `json:"name"`
	Balance   float64 `json:"balance"`
	APR       float64 `json:"apr"`
	MonthsEst int     `json:"months_est"`
}

// PaymentLine is one row of the monthly payment schedule.
type PaymentLine struct {
	Debt     string  `json:"debt"`
	Strategy string  `json:"strategy"` // "min" or "min+extra"
	Amount   float64 `json:"amount"`
}

// DebtPlan is the structured result of the payoff planner.
type DebtPlan struct {
	Method                  DebtStrategy  `json:"method"`
	NextFocus               NextFocus     `json:"next_focus"`
	Order                   []DebtOutlook `json:"order"`
	ProjectedInterestSaved  float64       `json:"projected_interest_saved"`
	RecommendedTotalPayment float64       `json:"recommended_total_payment"`
	Schedule                []PaymentLine `json:"schedule"`
	Recommendation          string        `json:"recommendation"`
}
