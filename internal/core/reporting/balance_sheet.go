package reporting

import (
	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/accounting"
	"github.com/SscSPs/mma_books/internal/utils/period"
)

// BuildBalanceSheet computes cumulative asset, liability and equity balances
// as of r.EndDate. r.StartDate is ignored.
func BuildBalanceSheet(data Ledger, r period.Range) domain.BalanceSheet {
	window := accounting.Window(r, accounting.Stock)
	net := accounting.Accumulate(data.Lines, accounting.EntriesWithin(data.Entries, window))
	accounts := sortedAccounts(data.Accounts)

	assets := buildSection(domain.Asset, accounts, net)
	liabilities := buildSection(domain.Liability, accounts, net)
	equity := buildSection(domain.Equity, accounts, net)
	liabilitiesAndEquity := liabilities.Total.Add(equity.Total)

	return domain.BalanceSheet{
		AsOf:                      window.EndDate,
		Assets:                    assets,
		Liabilities:               liabilities,
		Equity:                    equity,
		TotalAssets:               assets.Total,
		TotalLiabilities:          liabilities.Total,
		TotalEquity:               equity.Total,
		TotalLiabilitiesAndEquity: liabilitiesAndEquity,
		Balanced:                  withinTolerance(assets.Total, liabilitiesAndEquity),
	}
}
