package accounting

import (
	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/period"
	"github.com/shopspring/decimal"
)

// EntrySet is the set of journal entry IDs a computation may draw lines from.
type EntrySet map[string]struct{}

// Has reports whether the entry is in the set.
func (s EntrySet) Has(entryID string) bool {
	_, ok := s[entryID]
	return ok
}

// EntriesWithin returns the IDs of entries dated inside r.
func EntriesWithin(entries []domain.JournalEntry, r period.Range) EntrySet {
	set := make(EntrySet, len(entries))
	for _, e := range entries {
		if r.Contains(e.Day()) {
			set[e.EntryID] = struct{}{}
		}
	}
	return set
}

// Accumulate folds lines into net debit-minus-credit movement per account code.
// Only lines whose entry is in entryIDs are counted. No sign normalization is applied.
func Accumulate(lines []domain.JournalLine, entryIDs EntrySet) map[string]decimal.Decimal {
	net := make(map[string]decimal.Decimal)
	for _, line := range lines {
		if !entryIDs.Has(line.EntryID) {
			continue
		}
		net[line.AccountCode] = net[line.AccountCode].Add(line.Net())
	}
	return net
}

// EntryTotals sums the debit and credit sides of an entry's lines.
func EntryTotals(lines []domain.JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit, totalCredit = decimal.Zero, decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	return totalDebit, totalCredit
}

// BalancedEntries computes, per entry ID, whether its lines' debits equal its credits.
// Entries with no lines are balanced.
func BalancedEntries(lines []domain.JournalLine) map[string]bool {
	diff := make(map[string]decimal.Decimal)
	for _, line := range lines {
		diff[line.EntryID] = diff[line.EntryID].Add(line.Net())
	}
	balanced := make(map[string]bool, len(diff))
	for entryID, d := range diff {
		balanced[entryID] = d.IsZero()
	}
	return balanced
}
