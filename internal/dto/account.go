package dto

import (
	"github.com/lifedash/finances/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balance is the opening balance and defaults to zero.
type CreateAccountRequest struct {
	Name      string             `json:"name" binding:"required"`
	Type      domain.AccountType `json:"type" binding:"required,accounttype"`
	Currency  string             `json:"currency" binding:"required"`
	Color     string             `json:"color"`
	Balance   decimal.Decimal    `json:"balance"`
	IsDefault bool               `json:"isDefault"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Pointers distinguish fields not provided from zero-value updates. Balance
// is deliberately absent: balances change only through transaction postings.
type UpdateAccountRequest struct {
	Name      *string             `json:"name"`
	Type      *domain.AccountType `json:"type" binding:"omitempty,accounttype"`
	Currency  *string             `json:"currency"`
	Color     *string             `json:"color"`
	IsDefault *bool               `json:"isDefault"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Type      domain.AccountType `json:"type"`
	Balance   decimal.Decimal    `json:"balance"`
	Currency  string             `json:"currency"`
	Color     string             `json:"color"`
	IsDefault bool               `json:"isDefault"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID,
		Name:      acc.Name,
		Type:      acc.Type,
		Balance:   acc.Balance,
		Currency:  acc.Currency,
		Color:     acc.Color,
		IsDefault: acc.IsDefault,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs.
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}
