package repositories

import (
	"context"

	"github.com/SscSPs/mma_books/internal/core/domain"
)

// AccountReader is the read-only Chart of Accounts provider.
type AccountReader interface {
	// FetchAccounts retrieves the accounts of the given types ordered by code.
	// An empty types slice returns every account.
	FetchAccounts(ctx context.Context, types []domain.AccountType) ([]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
}
