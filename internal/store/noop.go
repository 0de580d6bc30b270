package store

import "SmartSaver/internal/model"

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) AddTransaction(_ *model.Transaction) (int64, error) { return 0, nil }
func (n *NoopStore) BulkInsert(_ []model.Transaction) (int, error)      { return 0, nil }
func (n *NoopStore) RecentTransactions(_ string, _ int) ([]model.Transaction, error) {
	return nil, nil
}
func (n *NoopStore) TotalsByCategory(_, _, _ string) ([]CategoryTotal, error) { return nil, nil }
func (n *NoopStore) MonthlySummary(_ string, year, month int) (*MonthlySummary, error) {
	return &MonthlySummary{Year: year, Month: month}, nil
}
func (n *NoopStore) Close() error { return nil }
