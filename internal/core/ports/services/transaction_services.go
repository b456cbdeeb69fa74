package services

import (
	"context"
	"time"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/dto"
)

// TransactionReaderSvc defines read operations over transactions. Listing
// operations sort by date descending, ties broken by insertion order.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves the transactions touching one
	// account as source or destination.
	ListTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// ListTransactionsByType retrieves all transactions of one type.
	ListTransactionsByType(ctx context.Context, transactionType domain.TransactionType) ([]domain.Transaction, error)

	// ListTransactionsForMonth retrieves the transactions dated within one
	// calendar month.
	ListTransactionsForMonth(ctx context.Context, month time.Month, year int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations over transactions. Every
// mutation symmetrically adjusts the balances of the affected account(s).
type TransactionWriterSvc interface {
	// CreateTransaction adds a new transaction and applies its balance effect.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction reverts the stored transaction's balance effect,
	// applies the patch, then applies the new effect, as one atomic step.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction after reverting its effect.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// MaterializeRecurring creates, at most once per calendar month, a fresh
	// instance of every recurring template transaction. Safe to call any
	// number of times within the same month; returns the newly created
	// transactions.
	MaterializeRecurring(ctx context.Context, now time.Time) ([]domain.Transaction, error)
}

// TransactionSvcFacade combines transaction read and write operations.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
