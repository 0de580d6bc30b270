package store

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"SmartSaver/internal/model"
)

// SQLiteStore persists transactions to a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (or creates) the database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboard reads don't block scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set synchronous: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite store opened: %s", dbPath)
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key   TEXT PRIMARY KEY,
			value TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id     TEXT NOT NULL,
			date        TEXT NOT NULL,
			description TEXT NOT NULL,
			amount      REAL NOT NULL,
			category    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_txn_user_date ON transactions(user_id, date DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_txn_category ON transactions(category)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

// AddTransaction inserts a single row and returns its id.
func (s *SQLiteStore) AddTransaction(t *model.Transaction) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`INSERT INTO transactions (user_id, date, description, amount, category)
		VALUES (?,?,?,?,?)`,
		t.UserID, t.Date, t.Description, t.Amount, t.Category,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// BulkInsert inserts rows inside one transaction and returns the count.
func (s *SQLiteStore) BulkInsert(rows []model.Transaction) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	stmt, err := tx.Prepare(`INSERT INTO transactions (user_id, date, description, amount, category)
		VALUES (?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return 0, err
	}
	defer stmt.Close()

	for _, r := range rows {
		if _, err := stmt.Exec(r.UserID, r.Date, r.Description, r.Amount, r.Category); err != nil {
			tx.Rollback()
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// RecentTransactions returns a user's rows, newest first.
func (s *SQLiteStore) RecentTransactions(userID string, limit int) ([]model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(`SELECT id, user_id, date, description, amount, COALESCE(category, '')
		FROM transactions
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Date, &t.Description, &t.Amount, &t.Category); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// TotalsByCategory aggregates spend per category over an optional date
// range. Sums are accumulated as decimals so long seeded histories don't
// drift in the cents.
func (s *SQLiteStore) TotalsByCategory(userID, dateFrom, dateTo string) ([]CategoryTotal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `SELECT COALESCE(category, 'Uncategorized'), amount FROM transactions WHERE user_id = ?`
	args := []any{userID}
	if dateFrom != "" {
		query += " AND date >= ?"
		args = append(args, dateFrom)
	}
	if dateTo != "" {
		query += " AND date <= ?"
		args = append(args, dateTo)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]decimal.Decimal)
	for rows.Next() {
		var category string
		var amount float64
		if err := rows.Scan(&category, &amount); err != nil {
			return nil, err
		}
		totals[category] = totals[category].Add(decimal.NewFromFloat(amount))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		out = append(out, CategoryTotal{Category: category, Total: total.Round(2).InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

// MonthlySummary counts a month's rows and nets their amounts.
func (s *SQLiteStore) MonthlySummary(userID string, year, month int) (*MonthlySummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	nextYear, nextMonth := year, month+1
	if month == 12 {
		nextYear, nextMonth = year+1, 1
	}
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	end := fmt.Sprintf("%04d-%02d-01", nextYear, nextMonth)

	rows, err := s.db.Query(`SELECT amount FROM transactions
		WHERE user_id = ? AND date >= ? AND date < ?`, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summary := &MonthlySummary{Year: year, Month: month}
	total := decimal.Zero
	for rows.Next() {
		var amount float64
		if err := rows.Scan(&amount); err != nil {
			return nil, err
		}
		total = total.Add(decimal.NewFromFloat(amount))
		summary.Txns++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	summary.Total = total.Round(2).InexactFloat64()
	return summary, nil
}

func (s *SQLiteStore) Close() error {
	log.Println("[INFO] closing sqlite store")
	return s.db.Close()
}
