package reporting

import (
	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/accounting"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"github.com/shopspring/decimal"
)

// BuildTrialBalance lists every account's cumulative net as of r.EndDate in a
// debit or credit column. Zero-net accounts are left out.
func BuildTrialBalance(data Ledger, r period.Range) domain.TrialBalance {
	window := r.AsOf()
	net := accounting.Accumulate(data.Lines, accounting.EntriesWithin(data.Entries, window))

	tb := domain.TrialBalance{
		AsOf:        window.EndDate,
		Rows:        []domain.TrialBalanceRow{},
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, acc := range sortedAccounts(data.Accounts) {
		if !acc.AccountType.Valid() {
			continue
		}
		amount := net[acc.Code]
		if amount.IsZero() {
			continue
		}

		row := domain.TrialBalanceRow{
			AccountCode: acc.Code,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if amount.IsPositive() {
			row.Debit = amount
		} else {
			row.Credit = amount.Neg()
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
	}
	tb.Balanced = withinTolerance(tb.TotalDebit, tb.TotalCredit)
	return tb
}
