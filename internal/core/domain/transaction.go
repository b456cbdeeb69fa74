package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes the three kinds of postings the ledger knows.
type TransactionType string

const (
	TransactionIncome   TransactionType = "income"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer"
)

// IsValid reports whether t is one of the known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense || t == TransactionTransfer
}

// RecurringFrequency describes how often a recurring template repeats.
type RecurringFrequency string

const (
	RecurMonthly RecurringFrequency = "monthly"
	RecurWeekly  RecurringFrequency = "weekly"
	RecurYearly  RecurringFrequency = "yearly"
)

// IsValid reports whether f is one of the known frequencies.
func (f RecurringFrequency) IsValid() bool {
	return f == RecurMonthly || f == RecurWeekly || f == RecurYearly
}

// Transaction is a single ledger entry. Income and expense transactions
// reference one account and one category; transfers reference a source and a
// destination account and carry no category. Amount is always non-negative,
// the type determines the sign of the balance effect.
type Transaction struct {
	ID          string             `json:"id"`
	Date        time.Time          `json:"date"`
	Description string             `json:"description"`
	Amount      decimal.Decimal    `json:"amount"`
	Type        TransactionType    `json:"type"`
	CategoryID  string             `json:"categoryId,omitempty"`
	AccountID   string             `json:"accountId"`
	ToAccountID string             `json:"toAccountId,omitempty"`
	IsRecurring bool               `json:"isRecurring,omitempty"`
	Frequency   RecurringFrequency `json:"recurringFrequency,omitempty"`
}

// TouchesAccount reports whether the transaction references accountID as
// either source or destination.
func (t Transaction) TouchesAccount(accountID string) bool {
	return t.AccountID == accountID || t.ToAccountID == accountID
}

// InMonth reports whether the transaction is dated within the given calendar
// month.
func (t Transaction) InMonth(month time.Month, year int) bool {
	return t.Date.Month() == month && t.Date.Year() == year
}
