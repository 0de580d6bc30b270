package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"SmartSaver/internal/model"
)

type seedCategory struct {
	Name string
	Lo   float64 // most negative spend
	Hi   float64 // least negative spend
}

var seedCategories = []seedCategory{
	{"Groceries", -1200, -200},
	{"Dining", -900, -150},
	{"Transport", -400, -50},
	{"Utilities", -2000, -600},
	{"Entertainment", -1200, -200},
	{"Shopping", -2500, -300},
}

var salaryAmounts = []float64{45000, 60000, 75000}

var rentAmounts = []float64{8000, 12000, 15000}

// Seed inserts synthetic transactions covering the past days for a user:
// salary on the 1st, rent on the 3rd, random categorized spend otherwise.
// The rng seed keeps demo data reproducible.
func Seed(st Store, userID string, days int, seed int64) (int, error) {
	if days <= 0 {
		days = 90
	}
	rng := rand.New(rand.NewSource(seed))
	today := time.Now()

	rows := make([]model.Transaction, 0, days)
	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, -i)
		date := day.Format("2006-01-02")

		if day.Day() == 1 {
			rows = append(rows, model.Transaction{
				UserID:      userID,
				Date:        date,
				Description: "Salary Credit",
				Amount:      salaryAmounts[rng.Intn(len(salaryAmounts))],
				Category:    "Income",
			})
			continue
		}
		if day.Day() == 3 {
			rows = append(rows, model.Transaction{
				UserID:      userID,
				Date:        date,
				Description: "Monthly Rent",
				Amount:      -rentAmounts[rng.Intn(len(rentAmounts))],
				Category:    "Rent",
			})
			continue
		}

		cat := seedCategories[rng.Intn(len(seedCategories))]
		amount := cat.Lo + rng.Float64()*(cat.Hi-cat.Lo)
		rows = append(rows, model.Transaction{
			UserID:      userID,
			Date:        date,
			Description: fmt.Sprintf("%s Purchase", cat.Name),
			Amount:      decimal.NewFromFloat(amount).Round(2).InexactFloat64(),
			Category:    cat.Name,
		})
	}

	return st.BulkInsert(rows)
}
