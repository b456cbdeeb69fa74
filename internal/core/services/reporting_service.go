package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lifedash/finances/internal/core/domain"
)

// replayBalance reconstructs one account's balance from every transaction
// dated strictly before the given instant. It never reads the account's live
// balance field. Callers must hold l.mu.
func (l *Ledger) replayBalance(accountID string, before time.Time) decimal.Decimal {
	balance := decimal.Zero
	for _, t := range l.transactions {
		if !t.Date.Before(before) {
			continue
		}
		if t.AccountID == accountID {
			switch t.Type {
			case domain.TransactionIncome:
				balance = balance.Add(t.Amount)
			case domain.TransactionExpense, domain.TransactionTransfer:
				balance = balance.Sub(t.Amount)
			}
		}
		if t.ToAccountID == accountID && t.Type == domain.TransactionTransfer {
			balance = balance.Add(t.Amount)
		}
	}
	return balance
}

// monthTotals sums the transactions dated within the month that keep admits.
// Transfers are skipped entirely: they are not income or expense at the
// aggregate level and never appear in category totals.
func monthTotals(txns []domain.Transaction, month time.Month, year int, keep func(domain.Transaction) bool) (income, expenses decimal.Decimal, categoryTotals map[string]decimal.Decimal) {
	income = decimal.Zero
	expenses = decimal.Zero
	categoryTotals = make(map[string]decimal.Decimal)

	for _, t := range txns {
		if !t.InMonth(month, year) || !keep(t) {
			continue
		}
		switch t.Type {
		case domain.TransactionIncome:
			income = income.Add(t.Amount)
			categoryTotals[t.CategoryID] = categoryTotals[t.CategoryID].Add(t.Amount)
		case domain.TransactionExpense:
			expenses = expenses.Add(t.Amount)
			categoryTotals[t.CategoryID] = categoryTotals[t.CategoryID].Add(t.Amount)
		}
	}
	return income, expenses, categoryTotals
}

// MonthlySummary computes the point-in-time summary for one calendar month.
// The starting balance is a from-scratch historical reconstruction: for every
// account, every transaction dated before the first of the month is replayed,
// independently of the live balance fields. Editing prior months later can
// therefore make the replayed figures diverge from the cached balances; the
// replay is authoritative for the summary.
func (l *Ledger) MonthlySummary(ctx context.Context, month time.Month, year int) (*domain.MonthlySummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.monthlySummary(month, year), nil
}

func (l *Ledger) monthlySummary(month time.Month, year int) *domain.MonthlySummary {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	startingBalance := decimal.Zero
	for _, acc := range l.accounts {
		startingBalance = startingBalance.Add(l.replayBalance(acc.ID, firstOfMonth))
	}

	income, expenses, categoryTotals := monthTotals(l.transactions, month, year, func(domain.Transaction) bool { return true })
	saved := income.Sub(expenses)

	return &domain.MonthlySummary{
		Month:           month,
		Year:            year,
		StartingBalance: startingBalance,
		EndingBalance:   startingBalance.Add(saved),
		TotalIncome:     income,
		TotalExpenses:   expenses,
		SavedAmount:     saved,
		CategoryTotals:  categoryTotals,
	}
}

// AccountMonthlySummary computes the monthly summary with the month totals
// restricted to transactions touching one account. The starting and ending
// balances remain the all-accounts figures; only the income, expense and
// category totals are scoped.
func (l *Ledger) AccountMonthlySummary(ctx context.Context, accountID string, month time.Month, year int) (*domain.MonthlySummary, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	summary := l.monthlySummary(month, year)

	income, expenses, categoryTotals := monthTotals(l.transactions, month, year, func(t domain.Transaction) bool {
		return t.TouchesAccount(accountID)
	})

	summary.TotalIncome = income
	summary.TotalExpenses = expenses
	summary.SavedAmount = income.Sub(expenses)
	summary.CategoryTotals = categoryTotals
	return summary, nil
}

// SpendingByCategory sums expense transactions per category for one month.
func (l *Ledger) SpendingByCategory(ctx context.Context, month time.Month, year int) (map[string]decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, _, totals := monthTotals(l.transactions, month, year, func(t domain.Transaction) bool {
		return t.Type == domain.TransactionExpense
	})
	return totals, nil
}

// IncomeByCategory sums income transactions per category for one month.
func (l *Ledger) IncomeByCategory(ctx context.Context, month time.Month, year int) (map[string]decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, _, totals := monthTotals(l.transactions, month, year, func(t domain.Transaction) bool {
		return t.Type == domain.TransactionIncome
	})
	return totals, nil
}

// TotalBalance sums the live balances of all accounts.
func (l *Ledger) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	total := decimal.Zero
	for _, acc := range l.accounts {
		total = total.Add(acc.Balance)
	}
	return total, nil
}
