// Package export renders reports as CSV for spreadsheet consumers.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ContentType is the media type of every rendering in this package.
const ContentType = "text/csv; charset=utf-8"

// GeneralLedger writes one row per ledger line followed by a total row per account.
func GeneralLedger(w io.Writer, gl *domain.GeneralLedger) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"account_code", "account_name", "date", "entry_id", "line_id", "description", "debit", "credit", "running_balance", "entry_balanced"})
	for _, acc := range gl.Accounts {
		for _, row := range acc.Rows {
			_ = cw.Write([]string{
				acc.Code, acc.Name,
				row.Date.Format(domain.DateLayout), row.EntryID, row.LineID, row.Description,
				amount(row.Debit), amount(row.Credit), amount(row.RunningBalance),
				strconv.FormatBool(row.Balanced),
			})
		}
		_ = cw.Write([]string{acc.Code, acc.Name, "", "", "", "Total", amount(acc.TotalDebit), amount(acc.TotalCredit), amount(acc.FinalBalance), ""})
	}
	return flush(cw)
}

// IncomeStatement writes the income and expense sections and the net income row.
func IncomeStatement(w io.Writer, is *domain.IncomeStatement) error {
	cw := csv.NewWriter(w)
	_ = cw.Write(statementHeader)
	writeSection(cw, is.Income)
	writeSection(cw, is.Expenses)
	_ = cw.Write([]string{"", "", "", "Net Income", amount(is.NetIncome)})
	return flush(cw)
}

// BalanceSheet writes the three stock sections and the equation totals.
func BalanceSheet(w io.Writer, bs *domain.BalanceSheet) error {
	cw := csv.NewWriter(w)
	_ = cw.Write(statementHeader)
	writeSection(cw, bs.Assets)
	writeSection(cw, bs.Liabilities)
	writeSection(cw, bs.Equity)
	_ = cw.Write([]string{"", "", "", "Total Liabilities and Equity", amount(bs.TotalLiabilitiesAndEquity)})
	return flush(cw)
}

// TrialBalance writes one row per account and a totals row.
func TrialBalance(w io.Writer, tb *domain.TrialBalance) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"account_code", "account_name", "account_type", "debit", "credit"})
	for _, row := range tb.Rows {
		_ = cw.Write([]string{row.AccountCode, row.AccountName, string(row.AccountType), amount(row.Debit), amount(row.Credit)})
	}
	_ = cw.Write([]string{"", "Total", "", amount(tb.TotalDebit), amount(tb.TotalCredit)})
	return flush(cw)
}

// Entries writes one row per journal line, repeating the entry header fields.
func Entries(w io.Writer, entries []domain.EntrySummary) error {
	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"date", "entry_id", "description", "line_id", "account_code", "debit", "credit", "entry_balanced"})
	for _, e := range entries {
		// An entry without lines still gets a header-only row.
		if len(e.Lines) == 0 {
			_ = cw.Write([]string{
				e.Day(), e.EntryID, e.Description,
				"", "", amount(e.TotalDebit), amount(e.TotalCredit),
				strconv.FormatBool(e.Balanced),
			})
			continue
		}
		for _, l := range e.Lines {
			_ = cw.Write([]string{
				e.Day(), e.EntryID, e.Description,
				l.LineID, l.AccountCode, amount(l.Debit), amount(l.Credit),
				strconv.FormatBool(e.Balanced),
			})
		}
	}
	return flush(cw)
}

var statementHeader = []string{"section", "category", "account_code", "account_name", "amount"}

func writeSection(cw *csv.Writer, s domain.StatementSection) {
	section := string(s.AccountType)
	for _, g := range s.Groups {
		for _, acc := range g.Accounts {
			_ = cw.Write([]string{section, g.Category, acc.Code, acc.Name, amount(acc.Balance)})
		}
		_ = cw.Write([]string{section, g.Category, "", "Subtotal", amount(g.Subtotal)})
	}
	_ = cw.Write([]string{section, "", "", "Total", amount(s.Total)})
}

// flush surfaces the first write error; csv.Writer keeps it until Flush.
func flush(cw *csv.Writer) error {
	cw.Flush()
	return cw.Error()
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
