package model

// Transaction is a single ledger row in the local store. Amounts are
// positive for credits and negative for spend.
type Transaction struct {
	ID          int64   `json:"id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
}
