package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used for entry dates and period bounds.
const DateLayout = "2006-01-02"

// JournalEntry is the header of a double-entry journal entry.
type JournalEntry struct {
	EntryID       string    `json:"entryID"`
	EntryDate     time.Time `json:"entryDate"` // Calendar day the event occurred
	BusinessID    string    `json:"businessID"`
	Description   string    `json:"description"`
	TransactionID string    `json:"transactionID,omitempty"` // Optional back-reference to a source invoice/transaction
}

// Day returns the entry date in YYYY-MM-DD form.
func (e JournalEntry) Day() string {
	return e.EntryDate.Format(DateLayout)
}

// JournalLine is one side of a journal entry, touching a single account.
type JournalLine struct {
	LineID      string          `json:"lineID"`
	EntryID     string          `json:"entryID"` // FK -> JournalEntry.EntryID
	AccountCode string          `json:"accountCode"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// Net returns debit minus credit for the line.
func (l JournalLine) Net() decimal.Decimal {
	return l.Debit.Sub(l.Credit)
}

// EntrySummary is a journal entry with its lines and double-entry totals.
// Balanced is observational only; unbalanced entries are still reported.
type EntrySummary struct {
	JournalEntry
	Lines       []JournalLine   `json:"lines"`
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
	Balanced    bool            `json:"balanced"`
}

// EntryFilter narrows a Journal Source query. Empty fields are unbounded.
type EntryFilter struct {
	BusinessID string
	DateFrom   string // inclusive, YYYY-MM-DD
	DateTo     string // inclusive, YYYY-MM-DD
}
