package reporting

import (
	"sort"

	"github.com/SscSPs/mma_books/internal/core/domain"
	"github.com/SscSPs/mma_books/internal/utils/accounting"
	"github.com/SscSPs/mma_books/internal/utils/pagination"
	"github.com/SscSPs/mma_books/internal/utils/period"
)

// ListEntries returns the entries dated within r with their lines and
// double-entry totals, newest first. Unbalanced entries are flagged, not dropped.
func ListEntries(data Ledger, r period.Range) []domain.EntrySummary {
	linesByEntry := make(map[string][]domain.JournalLine)
	for _, l := range data.Lines {
		linesByEntry[l.EntryID] = append(linesByEntry[l.EntryID], l)
	}

	summaries := []domain.EntrySummary{}
	for _, e := range data.Entries {
		if !r.Contains(e.Day()) {
			continue
		}
		lines := append([]domain.JournalLine{}, linesByEntry[e.EntryID]...)
		sort.SliceStable(lines, func(i, j int) bool { return lines[i].LineID < lines[j].LineID })

		totalDebit, totalCredit := accounting.EntryTotals(lines)
		summaries = append(summaries, domain.EntrySummary{
			JournalEntry: e,
			Lines:        lines,
			TotalDebit:   totalDebit,
			TotalCredit:  totalCredit,
			Balanced:     totalDebit.Equal(totalCredit),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if !a.EntryDate.Equal(b.EntryDate) {
			return a.EntryDate.After(b.EntryDate)
		}
		return a.EntryID > b.EntryID
	})
	return summaries
}

// PageEntries returns up to limit summaries strictly after the cursor, and the
// cursor for the next page when more remain. A non-positive limit returns
// everything after the cursor. summaries must be in ListEntries order.
func PageEntries(summaries []domain.EntrySummary, after *pagination.Cursor, limit int) ([]domain.EntrySummary, *pagination.Cursor) {
	start := 0
	if after != nil {
		start = sort.Search(len(summaries), func(i int) bool {
			return after.Follows(summaries[i].Day(), summaries[i].EntryID)
		})
	}
	rest := summaries[start:]
	if limit <= 0 || len(rest) <= limit {
		return rest, nil
	}

	page := rest[:limit]
	last := page[len(page)-1]
	return page, &pagination.Cursor{Date: last.Day(), EntryID: last.EntryID}
}
