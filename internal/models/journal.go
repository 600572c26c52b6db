package models

import "time"

// JournalEntry is a row of the journal_entries table.
type JournalEntry struct {
	EntryID       string    `db:"entry_id"`
	EntryDate     time.Time `db:"entry_date"`
	BusinessID    string    `db:"business_id"`
	Description   *string   `db:"description"`    // Nullable
	TransactionID *string   `db:"transaction_id"` // Nullable back-reference to an invoice/transaction
}

// JournalLine is a row of the journal_lines table. Amounts are read as text
// so that missing or malformed values can be mapped to zero.
type JournalLine struct {
	LineID      string  `db:"line_id"`
	EntryID     string  `db:"entry_id"`
	AccountCode string  `db:"account_code"`
	Debit       *string `db:"debit"`
	Credit      *string `db:"credit"`
}
