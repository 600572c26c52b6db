package mapping

import (
	"time"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/models"
	"github.com/SscSPs/mma_books/internal/utils/accounting"
)

// ToDomainJournalEntry converts a model JournalEntry to a domain JournalEntry.
// The entry date is truncated to its calendar day.
func ToDomainJournalEntry(m models.JournalEntry) domain.JournalEntry {
	y, mo, d := m.EntryDate.Date()
	return domain.JournalEntry{
		EntryID:       m.EntryID,
		EntryDate:     time.Date(y, mo, d, 0, 0, 0, 0, time.UTC),
		BusinessID:    m.BusinessID,
		Description:   derefString(m.Description),
		TransactionID: derefString(m.TransactionID),
	}
}

// ToDomainJournalLine converts a model JournalLine to a domain JournalLine.
// Missing or malformed amounts become zero.
func ToDomainJournalLine(m models.JournalLine) domain.JournalLine {
	return domain.JournalLine{
		LineID:      m.LineID,
		EntryID:     m.EntryID,
		AccountCode: m.AccountCode,
		Debit:       accounting.ParseAmount(m.Debit),
		Credit:      accounting.ParseAmount(m.Credit),
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
