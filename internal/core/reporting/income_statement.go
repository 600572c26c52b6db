package reporting

import (
	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/accounting"
	"github.com/SscSPs/mma_books/internal/utils/period"
)

// BuildIncomeStatement computes income and expenses over [r.StartDate, r.EndDate].
func BuildIncomeStatement(data Ledger, r period.Range) domain.IncomeStatement {
	window := accounting.Window(r, accounting.Flow)
	net := accounting.Accumulate(data.Lines, accounting.EntriesWithin(data.Entries, window))
	accounts := sortedAccounts(data.Accounts)

	income := buildSection(domain.Income, accounts, net)
	expenses := buildSection(domain.Expense, accounts, net)

	return domain.IncomeStatement{
		StartDate:     r.StartDate,
		EndDate:       r.EndDate,
		Income:        income,
		Expenses:      expenses,
		TotalIncome:   income.Total,
		TotalExpenses: expenses.Total,
		NetIncome:     income.Total.Sub(expenses.Total),
	}
}
