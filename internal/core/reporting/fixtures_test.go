package reporting_test

import (
	"time"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/core/reporting"
	"github.com/shopspring/decimal"
)

var chart = []domain.Account{
	{Code: "1000", Name: "Cash", AccountType: domain.Asset, Category: "Current Assets"},
	{Code: "1100", Name: "Accounts Receivable", AccountType: domain.Asset, Category: "Current Assets"},
	{Code: "1500", Name: "Equipment", AccountType: domain.Asset, Category: "Fixed Assets"},
	{Code: "2000", Name: "Accounts Payable", AccountType: domain.Liability, Category: "Current Liabilities"},
	{Code: "3000", Name: "Owner Capital", AccountType: domain.Equity, Category: "Owner Equity"},
	{Code: "4000", Name: "Sales", AccountType: domain.Income, Category: "Operating Income"},
	{Code: "4900", Name: "Interest Income", AccountType: domain.Income, Category: "Other Income"},
	{Code: "6000", Name: "Rent", AccountType: domain.Expense, Category: "Operating Expenses"},
	{Code: "6100", Name: "Utilities", AccountType: domain.Expense, Category: "Operating Expenses"},
}

func day(s string) time.Time {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func entry(id, date, description string) domain.JournalEntry {
	return domain.JournalEntry{EntryID: id, EntryDate: day(date), BusinessID: "biz-1", Description: description}
}

func dr(entryID, lineID, code, amount string) domain.JournalLine {
	return domain.JournalLine{LineID: lineID, EntryID: entryID, AccountCode: code, Debit: amt(amount), Credit: decimal.Zero}
}

func cr(entryID, lineID, code, amount string) domain.JournalLine {
	return domain.JournalLine{LineID: lineID, EntryID: entryID, AccountCode: code, Debit: decimal.Zero, Credit: amt(amount)}
}

// marchLedger is a sale of 500 on 2024-03-15 and rent of 200 on 2024-03-20.
func marchLedger() reporting.Ledger {
	return reporting.Ledger{
		Accounts: chart,
		Entries: []domain.JournalEntry{
			entry("E2", "2024-03-20", "March rent"),
			entry("E1", "2024-03-15", "Cash sale"),
		},
		Lines: []domain.JournalLine{
			dr("E1", "L1", "1000", "500"),
			cr("E1", "L2", "4000", "500"),
			dr("E2", "L3", "6000", "200"),
			cr("E2", "L4", "1000", "200"),
		},
	}
}
