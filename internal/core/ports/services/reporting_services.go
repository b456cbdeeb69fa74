package services

import (
	"context"
	"time"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingSvcFacade defines the derived, read-only views over the ledger.
// Nothing here mutates persisted state.
type ReportingSvcFacade interface {
	// MonthlySummary computes the summary for one calendar month across all
	// accounts. The starting balance is reconstructed by replaying history,
	// not read from the accounts' live balance fields.
	MonthlySummary(ctx context.Context, month time.Month, year int) (*domain.MonthlySummary, error)

	// AccountMonthlySummary computes the summary with month totals restricted
	// to transactions touching one account.
	AccountMonthlySummary(ctx context.Context, accountID string, month time.Month, year int) (*domain.MonthlySummary, error)

	// SpendingByCategory sums expense transactions per category for one month.
	SpendingByCategory(ctx context.Context, month time.Month, year int) (map[string]decimal.Decimal, error)

	// IncomeByCategory sums income transactions per category for one month.
	IncomeByCategory(ctx context.Context, month time.Month, year int) (map[string]decimal.Decimal, error)

	// TotalBalance sums the live balances of all accounts.
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
}
