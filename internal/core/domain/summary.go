package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySummary is a derived point-in-time view of one calendar month. It is
// never persisted. StartingBalance is reconstructed by replaying every
// transaction dated before the month, independently of the accounts' live
// balance fields.
type MonthlySummary struct {
	Month           time.Month                 `json:"month"`
	Year            int                        `json:"year"`
	StartingBalance decimal.Decimal            `json:"startingBalance"`
	EndingBalance   decimal.Decimal            `json:"endingBalance"`
	TotalIncome     decimal.Decimal            `json:"totalIncome"`
	TotalExpenses   decimal.Decimal            `json:"totalExpenses"`
	SavedAmount     decimal.Decimal            `json:"savedAmount"`
	CategoryTotals  map[string]decimal.Decimal `json:"categoryTotals"`
}

// Snapshot bundles the four persisted collections. It is the unit the
// snapshot repository loads and saves; every mutating ledger operation writes
// the full snapshot, not a delta.
type Snapshot struct {
	Accounts     []Account
	Categories   []Category
	Transactions []Transaction
	Budgets      []Budget
}
