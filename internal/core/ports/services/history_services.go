package services

import (
	"context"

	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/SscSPs/moneyswap/internal/dto"
)

// HistoryRecorder is the append-only side used by the conversion engine.
type HistoryRecorder interface {
	RecordConversion(ctx context.Context, result domain.ConversionResult) error
}

// HistoryReaderSvc defines read operations for conversion history
type HistoryReaderSvc interface {
	// ListHistory returns a page of the user's history, newest first.
	ListHistory(ctx context.Context, userID string, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error)
}

// HistoryWriterSvc defines write operations for conversion history
type HistoryWriterSvc interface {
	HistoryRecorder

	// DeleteHistoryEntry removes a single entry.
	DeleteHistoryEntry(ctx context.Context, userID, entryID string) error

	// ClearHistory removes every entry of the user.
	ClearHistory(ctx context.Context, userID string) (int64, error)
}

// HistorySvcFacade combines all history-related service interfaces
type HistorySvcFacade interface {
	HistoryReaderSvc
	HistoryWriterSvc
}
