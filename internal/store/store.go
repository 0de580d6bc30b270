package store

import "SmartSaver/internal/model"

// CategoryTotal is an aggregate of spend per category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// MonthlySummary is a quick month roll-up: transaction count and net total.
type MonthlySummary struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Txns  int     `json:"txns"`
	Total float64 `json:"total"`
}

// Store persists synthetic transaction rows for the dashboard. Agents
// never read it directly; they only see fields already on UserState.
type Store interface {
	AddTransaction(t *model.Transaction) (int64, error)
	BulkInsert(rows []model.Transaction) (int, error)
	RecentTransactions(userID string, limit int) ([]model.Transaction, error)
	TotalsByCategory(userID, dateFrom, dateTo string) ([]CategoryTotal, error)
	MonthlySummary(userID string, year, month int) (*MonthlySummary, error)
	Close() error
}
