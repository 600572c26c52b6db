package repositories

import (
	"context"

	"github.com/SscSPs/mma_books/internal/core/domain"
)

// JournalReader is the read-only Journal Source.
type JournalReader interface {
	// FetchEntries retrieves entry headers matching the filter, newest first.
	FetchEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.JournalEntry, error)

	// FetchLines retrieves every line belonging to the given entries.
	FetchLines(ctx context.Context, entryIDs []string) ([]domain.JournalLine, error)
}

// JournalRepositoryFacade combines all journal-related repository interfaces
type JournalRepositoryFacade interface {
	JournalReader
}
