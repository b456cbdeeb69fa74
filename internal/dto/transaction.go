package dto

import (
	"time"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to create a transaction.
// Income and expense transactions require CategoryID and must leave
// ToAccountID empty; transfers require ToAccountID and must leave CategoryID
// empty. Cross-field rules are enforced by the ledger, not by binding tags.
type CreateTransactionRequest struct {
	Date        time.Time                 `json:"date" binding:"required"`
	Description string                    `json:"description" binding:"required"`
	Amount      decimal.Decimal           `json:"amount"`
	Type        domain.TransactionType    `json:"type" binding:"required,transactiontype"`
	CategoryID  string                    `json:"categoryId"`
	AccountID   string                    `json:"accountId" binding:"required"`
	ToAccountID string                    `json:"toAccountId"`
	IsRecurring bool                      `json:"isRecurring"`
	Frequency   domain.RecurringFrequency `json:"recurringFrequency" binding:"omitempty,recurfreq"`
}

// UpdateTransactionRequest defines the data allowed for updating a
// transaction. The patched transaction is re-validated as a whole before its
// balance effect replaces the original's.
type UpdateTransactionRequest struct {
	Date        *time.Time                 `json:"date"`
	Description *string                    `json:"description"`
	Amount      *decimal.Decimal           `json:"amount"`
	Type        *domain.TransactionType    `json:"type" binding:"omitempty,transactiontype"`
	CategoryID  *string                    `json:"categoryId"`
	AccountID   *string                    `json:"accountId"`
	ToAccountID *string                    `json:"toAccountId"`
	IsRecurring *bool                      `json:"isRecurring"`
	Frequency   *domain.RecurringFrequency `json:"recurringFrequency" binding:"omitempty,recurfreq"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	ID          string                    `json:"id"`
	Date        time.Time                 `json:"date"`
	Description string                    `json:"description"`
	Amount      decimal.Decimal           `json:"amount"`
	Type        domain.TransactionType    `json:"type"`
	CategoryID  string                    `json:"categoryId,omitempty"`
	AccountID   string                    `json:"accountId"`
	ToAccountID string                    `json:"toAccountId,omitempty"`
	IsRecurring bool                      `json:"isRecurring"`
	Frequency   domain.RecurringFrequency `json:"recurringFrequency,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to a response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		Date:        txn.Date,
		Description: txn.Description,
		Amount:      txn.Amount,
		Type:        txn.Type,
		CategoryID:  txn.CategoryID,
		AccountID:   txn.AccountID,
		ToAccountID: txn.ToAccountID,
		IsRecurring: txn.IsRecurring,
		Frequency:   txn.Frequency,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to
// response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
