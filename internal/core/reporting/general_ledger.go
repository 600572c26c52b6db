package reporting

import (
	"sort"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/accounting"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"github.com/shopspring/decimal"
)

// AllAccounts selects every account in BuildGeneralLedger.
const AllAccounts = "all"

// BuildGeneralLedger lists, per account, the lines in that account's scope in
// chronological order with a raw debit-minus-credit running balance.
//
// Rows sharing a date are ordered by entry ID, then line ID. Accounts without
// lines in scope are omitted unless accountCode names that account explicitly.
func BuildGeneralLedger(data Ledger, r period.Range, accountCode string) domain.GeneralLedger {
	explicit := accountCode != "" && accountCode != AllAccounts

	entries := make(map[string]domain.JournalEntry, len(data.Entries))
	for _, e := range data.Entries {
		entries[e.EntryID] = e
	}
	balanced := accounting.BalancedEntries(data.Lines)

	byAccount := make(map[string][]domain.JournalLine)
	for _, l := range data.Lines {
		byAccount[l.AccountCode] = append(byAccount[l.AccountCode], l)
	}

	gl := domain.GeneralLedger{
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Accounts:  []domain.AccountLedger{},
	}

	for _, acc := range sortedAccounts(data.Accounts) {
		if explicit && acc.Code != accountCode {
			continue
		}
		window, ok := accounting.WindowFor(r, acc.AccountType)
		if !ok {
			continue
		}

		rows := []domain.LedgerRow{}
		for _, l := range byAccount[acc.Code] {
			entry, ok := entries[l.EntryID]
			if !ok || !window.Contains(entry.Day()) {
				continue
			}
			rows = append(rows, domain.LedgerRow{
				Date:        entry.EntryDate,
				EntryID:     entry.EntryID,
				LineID:      l.LineID,
				Description: entry.Description,
				Debit:       l.Debit,
				Credit:      l.Credit,
				Balanced:    balanced[entry.EntryID],
			})
		}
		if len(rows) == 0 && !explicit {
			continue
		}

		gl.Accounts = append(gl.Accounts, accountLedger(acc, rows))
	}
	return gl
}

func accountLedger(acc domain.Account, rows []domain.LedgerRow) domain.AccountLedger {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.EntryID != b.EntryID {
			return a.EntryID < b.EntryID
		}
		return a.LineID < b.LineID
	})

	running, totalDebit, totalCredit := decimal.Zero, decimal.Zero, decimal.Zero
	for i := range rows {
		running = running.Add(rows[i].Debit.Sub(rows[i].Credit))
		rows[i].RunningBalance = running
		totalDebit = totalDebit.Add(rows[i].Debit)
		totalCredit = totalCredit.Add(rows[i].Credit)
	}

	return domain.AccountLedger{
		Code:         acc.Code,
		Name:         acc.Name,
		AccountType:  acc.AccountType,
		Category:     acc.Category,
		Rows:         rows,
		TotalDebit:   totalDebit,
		TotalCredit:  totalCredit,
		FinalBalance: totalDebit.Sub(totalCredit),
	}
}
