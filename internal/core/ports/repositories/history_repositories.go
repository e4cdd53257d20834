package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/moneyswap/internal/core/domain"
)

// HistoryCursor marks the position after which the next page starts.
// A zero cursor means "from the newest entry".
type HistoryCursor struct {
	CreatedAt time.Time
	EntryID   string
}

// HistoryReader defines read operations for conversion history
type HistoryReader interface {
	// FindHistory returns up to limit entries for the user, newest first, strictly after cursor.
	FindHistory(ctx context.Context, userID string, limit int, cursor HistoryCursor) ([]domain.HistoryEntry, error)
}

// HistoryWriter defines write operations for conversion history
type HistoryWriter interface {
	// AppendHistoryEntry stores a new entry; the store assigns CreatedAt.
	AppendHistoryEntry(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error)

	// DeleteHistoryEntry removes one entry owned by userID.
	DeleteHistoryEntry(ctx context.Context, userID, entryID string) error

	// ClearHistory removes all entries of userID and reports how many were removed.
	ClearHistory(ctx context.Context, userID string) (int64, error)
}

// HistoryRepositoryFacade combines all history-related repository interfaces
type HistoryRepositoryFacade interface {
	HistoryReader
	HistoryWriter
}
