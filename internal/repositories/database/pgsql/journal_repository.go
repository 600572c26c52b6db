package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/mma_books/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_books/internal/core/ports/repositories"
	"github.com/SscSPs/mma_books/internal/models"
	"github.com/SscSPs/mma_books/internal/utils/mapping"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entries and lines.
func newPgxJournalRepository(pool Querier) portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepositoryFacade
var _ portsrepo.JournalRepositoryFacade = (*PgxJournalRepository)(nil)

// FetchEntries retrieves journal entry headers matching the filter, newest first.
func (r *PgxJournalRepository) FetchEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	baseQuery := `
		SELECT entry_id, entry_date, business_id, description, transaction_id
		FROM journal_entries
	`
	conditions := []string{}
	args := []any{}
	if filter.BusinessID != "" {
		args = append(args, filter.BusinessID)
		conditions = append(conditions, "business_id = $"+strconv.Itoa(len(args)))
	}
	if filter.DateFrom != "" {
		args = append(args, filter.DateFrom)
		conditions = append(conditions, "entry_date >= $"+strconv.Itoa(len(args))+"::date")
	}
	if filter.DateTo != "" {
		args = append(args, filter.DateTo)
		conditions = append(conditions, "entry_date <= $"+strconv.Itoa(len(args))+"::date")
	}

	query := baseQuery
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY entry_date DESC, entry_id DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying journal entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		var m models.JournalEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.EntryDate,
			&m.BusinessID,
			&m.Description,
			&m.TransactionID,
		); err != nil {
			return nil, fmt.Errorf("error scanning journal entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal entry rows: %w", err)
	}

	return entries, nil
}

// FetchLines retrieves all lines for the given entry IDs.
func (r *PgxJournalRepository) FetchLines(ctx context.Context, entryIDs []string) ([]domain.JournalLine, error) {
	if len(entryIDs) == 0 {
		return []domain.JournalLine{}, nil
	}

	query := `
		SELECT line_id, entry_id, account_code, debit::text, credit::text
		FROM journal_lines
		WHERE entry_id = ANY($1)
		ORDER BY entry_id, line_id;
	`

	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, fmt.Errorf("error querying journal lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(
			&m.LineID,
			&m.EntryID,
			&m.AccountCode,
			&m.Debit,
			&m.Credit,
		); err != nil {
			return nil, fmt.Errorf("error scanning journal line row: %w", err)
		}
		lines = append(lines, mapping.ToDomainJournalLine(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal line rows: %w", err)
	}

	return lines, nil
}
