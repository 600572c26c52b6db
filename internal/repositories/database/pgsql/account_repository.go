package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/mma_books/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_books/internal/core/ports/repositories"
	"github.com/SscSPs/mma_books/internal/models"
	"github.com/SscSPs/mma_books/internal/utils/mapping"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new chart-of-accounts repository.
func newPgxAccountRepository(pool Querier) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// FetchAccounts retrieves accounts of the given types ordered by code.
func (r *PgxAccountRepository) FetchAccounts(ctx context.Context, types []domain.AccountType) ([]domain.Account, error) {
	query := `
		SELECT code, name, account_type, category
		FROM accounts
	`
	args := []any{}
	if len(types) > 0 {
		typeNames := make([]string, len(types))
		for i, t := range types {
			typeNames[i] = string(t)
		}
		query += ` WHERE account_type = ANY($1)`
		args = append(args, typeNames)
	}
	query += ` ORDER BY code;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var m models.Account
		if err := rows.Scan(&m.Code, &m.Name, &m.AccountType, &m.Category); err != nil {
			return nil, fmt.Errorf("error scanning account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}
