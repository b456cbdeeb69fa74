package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies an account by how it is used.
type AccountType string

const (
	AccountCredit     AccountType = "credit"
	AccountDebit      AccountType = "debit"
	AccountSavings    AccountType = "savings"
	AccountCash       AccountType = "cash"
	AccountInvestment AccountType = "investment"
)

// IsValid reports whether t is one of the known account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountCredit, AccountDebit, AccountSavings, AccountCash, AccountInvestment:
		return true
	}
	return false
}

// Account represents a financial account (bank account, credit card, cash, ...).
// Balance is maintained eagerly: every transaction mutation adjusts it at
// commit time rather than deriving it from the transaction log on read.
type Account struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Type      AccountType     `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Color     string          `json:"color"`
	IsDefault bool            `json:"isDefault,omitempty"`
}
