package services

import (
	"context"

	"github.com/lifedash/finances/internal/core/domain"
	"github.com/lifedash/finances/internal/dto"
)

// AccountReaderSvc defines read operations over accounts. All results are
// copies; callers cannot reach the ledger's canonical collections through
// them.
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves all accounts in insertion order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)

	// DefaultAccount resolves the default account: the first account flagged
	// default, else the first account, else the built-in seed account.
	DefaultAccount(ctx context.Context) (*domain.Account, error)
}

// AccountWriterSvc defines write operations over accounts.
type AccountWriterSvc interface {
	// CreateAccount adds a new account and returns it with its assigned id.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error)

	// UpdateAccount applies a partial update to an existing account.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account together with every transaction that
	// references it as source or destination.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountSvcFacade combines account read and write operations.
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
