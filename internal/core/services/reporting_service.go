package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/mma_books/internal/apperrors"
	"github.com/SscSPs/mma_books/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_books/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_books/internal/core/ports/services"
	"github.com/SscSPs/mma_books/internal/core/reporting"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchTimeout bounds each call to the journal and account stores.
const DefaultFetchTimeout = 10 * time.Second

var (
	flowTypes  = []domain.AccountType{domain.Income, domain.Expense}
	stockTypes = []domain.AccountType{domain.Asset, domain.Liability, domain.Equity}
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	journalRepo  portsrepo.JournalReader
	now          func() time.Time
	fetchTimeout time.Duration
}

// ReportingServiceOption is a functional option for configuring the reporting service
type ReportingServiceOption func(*reportingService)

// WithClock sets the clock used to resolve period tokens.
func WithClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// WithFetchTimeout bounds each external fetch. Non-positive values disable the bound.
func WithFetchTimeout(d time.Duration) ReportingServiceOption {
	return func(s *reportingService) {
		s.fetchTimeout = d
	}
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader, options ...ReportingServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		accountRepo:  accountRepo,
		journalRepo:  journalRepo,
		now:          time.Now,
		fetchTimeout: DefaultFetchTimeout,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// GeneralLedger generates per-account ledgers. Every account draws from
// entries up to the end date; flow accounts are narrowed to the period by the builder.
func (s *reportingService) GeneralLedger(ctx context.Context, query domain.ReportQuery) (*domain.GeneralLedger, period.Range, error) {
	r := s.resolveRange(ctx, query)
	data, err := s.load(ctx, nil, domain.EntryFilter{BusinessID: query.BusinessID, DateTo: r.EndDate})
	if err != nil {
		s.logFetchFailure(ctx, err, "general ledger", query, r)
		return nil, period.Range{}, err
	}

	gl := reporting.BuildGeneralLedger(data, r, query.AccountCode)

	s.LogInfo(ctx, "General ledger generated successfully",
		reportAttrs(query, r,
			slog.String("account", query.AccountCode),
			slog.Int("account_count", len(gl.Accounts)))...)
	return &gl, r, nil
}

// IncomeStatement generates an income statement for the resolved period
func (s *reportingService) IncomeStatement(ctx context.Context, query domain.ReportQuery) (*domain.IncomeStatement, period.Range, error) {
	r := s.resolveRange(ctx, query)
	data, err := s.load(ctx, flowTypes, domain.EntryFilter{BusinessID: query.BusinessID, DateFrom: r.StartDate, DateTo: r.EndDate})
	if err != nil {
		s.logFetchFailure(ctx, err, "income statement", query, r)
		return nil, period.Range{}, err
	}

	is := reporting.BuildIncomeStatement(data, r)

	s.LogInfo(ctx, "Income statement generated successfully",
		reportAttrs(query, r,
			slog.String("total_income", is.TotalIncome.String()),
			slog.String("total_expenses", is.TotalExpenses.String()),
			slog.String("net_income", is.NetIncome.String()))...)
	return &is, r, nil
}

// BalanceSheet generates a balance sheet as of the end of the resolved period
func (s *reportingService) BalanceSheet(ctx context.Context, query domain.ReportQuery) (*domain.BalanceSheet, period.Range, error) {
	r := s.resolveRange(ctx, query)
	data, err := s.load(ctx, stockTypes, domain.EntryFilter{BusinessID: query.BusinessID, DateTo: r.EndDate})
	if err != nil {
		s.logFetchFailure(ctx, err, "balance sheet", query, r)
		return nil, period.Range{}, err
	}

	bs := reporting.BuildBalanceSheet(data, r)

	if !bs.Balanced {
		s.LogDebug(ctx, "Balance sheet does not balance",
			slog.String("total_assets", bs.TotalAssets.String()),
			slog.String("total_liabilities_and_equity", bs.TotalLiabilitiesAndEquity.String()))
	}
	s.LogInfo(ctx, "Balance sheet generated successfully",
		reportAttrs(query, r,
			slog.Int("asset_groups", len(bs.Assets.Groups)),
			slog.Int("liability_groups", len(bs.Liabilities.Groups)),
			slog.Int("equity_groups", len(bs.Equity.Groups)),
			slog.Bool("balanced", bs.Balanced))...)
	return &bs, r, nil
}

// TrialBalance generates a trial balance as of the end of the resolved period
func (s *reportingService) TrialBalance(ctx context.Context, query domain.ReportQuery) (*domain.TrialBalance, period.Range, error) {
	r := s.resolveRange(ctx, query)
	data, err := s.load(ctx, nil, domain.EntryFilter{BusinessID: query.BusinessID, DateTo: r.EndDate})
	if err != nil {
		s.logFetchFailure(ctx, err, "trial balance", query, r)
		return nil, period.Range{}, err
	}

	tb := reporting.BuildTrialBalance(data, r)

	s.LogInfo(ctx, "Trial balance generated successfully",
		reportAttrs(query, r,
			slog.Int("row_count", len(tb.Rows)),
			slog.Bool("balanced", tb.Balanced))...)
	return &tb, r, nil
}

// ListEntries lists journal entries in the resolved period with their balance flags
func (s *reportingService) ListEntries(ctx context.Context, query domain.ReportQuery) ([]domain.EntrySummary, period.Range, error) {
	r := s.resolveRange(ctx, query)
	entries, lines, err := s.loadJournal(ctx, domain.EntryFilter{BusinessID: query.BusinessID, DateFrom: r.StartDate, DateTo: r.EndDate})
	if err != nil {
		s.logFetchFailure(ctx, err, "journal entries", query, r)
		return nil, period.Range{}, err
	}

	summaries := reporting.ListEntries(reporting.Ledger{Entries: entries, Lines: lines}, r)

	s.LogInfo(ctx, "Journal entries listed successfully",
		reportAttrs(query, r, slog.Int("entry_count", len(summaries)))...)
	return summaries, r, nil
}

// resolveRange reads the clock once per report. Explicit dates override the period token.
func (s *reportingService) resolveRange(ctx context.Context, query domain.ReportQuery) period.Range {
	if query.StartDate != "" || query.EndDate != "" {
		return period.Range{StartDate: query.StartDate, EndDate: query.EndDate}
	}
	if query.Period != "" && !period.Known(query.Period) {
		s.LogDebug(ctx, "Unrecognized period token, using current month", slog.String("period", query.Period))
	}
	return period.Resolve(query.Period, s.now())
}

// load fetches the chart of accounts and the journal concurrently.
// Either failure aborts the whole load.
func (s *reportingService) load(ctx context.Context, types []domain.AccountType, filter domain.EntryFilter) (reporting.Ledger, error) {
	var (
		accounts []domain.Account
		entries  []domain.JournalEntry
		lines    []domain.JournalLine
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fetchCtx, cancel := s.fetchContext(gctx)
		defer cancel()

		var err error
		accounts, err = s.accountRepo.FetchAccounts(fetchCtx, types)
		if err != nil {
			return apperrors.NewFetchError("chart of accounts", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		entries, lines, err = s.loadJournal(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return reporting.Ledger{}, err
	}
	return reporting.Ledger{Accounts: accounts, Entries: entries, Lines: lines}, nil
}

// loadJournal fetches entry headers and then the lines keyed by their IDs.
func (s *reportingService) loadJournal(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, []domain.JournalLine, error) {
	fetchCtx, cancel := s.fetchContext(ctx)
	entries, err := s.journalRepo.FetchEntries(fetchCtx, filter)
	cancel()
	if err != nil {
		return nil, nil, apperrors.NewFetchError("journal entries", err)
	}
	if len(entries) == 0 {
		return entries, []domain.JournalLine{}, nil
	}

	entryIDs := make([]string, len(entries))
	for i, e := range entries {
		entryIDs[i] = e.EntryID
	}

	fetchCtx, cancel = s.fetchContext(ctx)
	defer cancel()
	lines, err := s.journalRepo.FetchLines(fetchCtx, entryIDs)
	if err != nil {
		return nil, nil, apperrors.NewFetchError("journal lines", err)
	}
	return entries, lines, nil
}

func (s *reportingService) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.fetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.fetchTimeout)
}

func (s *reportingService) logFetchFailure(ctx context.Context, err error, report string, query domain.ReportQuery, r period.Range) {
	s.LogError(ctx, err, "Failed to retrieve data for "+report, reportAttrs(query, r)...)
}

func reportAttrs(query domain.ReportQuery, r period.Range, extra ...any) []any {
	attrs := []any{
		slog.String("business_id", query.BusinessID),
		slog.String("period", query.Period),
		slog.String("start_date", r.StartDate),
		slog.String("end_date", r.EndDate),
	}
	return append(attrs, extra...)
}
