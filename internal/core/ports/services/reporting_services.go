package services

import (
	"context"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/period"
)

// ReportingService defines operations for generating financial reports.
// Each operation also returns the date range it resolved the query to, read
// from a single clock reading. A failed fetch returns an error matching
// apperrors.ErrDataFetch and no report.
type ReportingService interface {
	// GeneralLedger builds per-account ledgers with running balances
	GeneralLedger(ctx context.Context, query domain.ReportQuery) (*domain.GeneralLedger, period.Range, error)

	// IncomeStatement builds the income statement for the query period
	IncomeStatement(ctx context.Context, query domain.ReportQuery) (*domain.IncomeStatement, period.Range, error)

	// BalanceSheet builds the balance sheet as of the end of the query period
	BalanceSheet(ctx context.Context, query domain.ReportQuery) (*domain.BalanceSheet, period.Range, error)

	// TrialBalance builds a trial balance as of the end of the query period
	TrialBalance(ctx context.Context, query domain.ReportQuery) (*domain.TrialBalance, period.Range, error)

	// ListEntries lists the journal entries in the query period with balance flags
	ListEntries(ctx context.Context, query domain.ReportQuery) ([]domain.EntrySummary, period.Range, error)
}
