package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/dto"
	"github.com/SscSPs/moneyswap/internal/utils/pagination"
	"github.com/google/uuid"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type historyService struct {
	BaseService
	historyRepo portsrepo.HistoryRepositoryFacade
}

// NewHistoryService creates a new history service.
func NewHistoryService(historyRepo portsrepo.HistoryRepositoryFacade) portssvc.HistorySvcFacade {
	return &historyService{historyRepo: historyRepo}
}

// RecordConversion appends a conversion result to the owner's history.
func (s *historyService) RecordConversion(ctx context.Context, result domain.ConversionResult) error {
	if result.UserID == "" {
		return apperrors.NewValidationError("conversion result has no owner")
	}

	entry := domain.NewHistoryEntry(uuid.NewString(), result)
	stored, err := s.historyRepo.AppendHistoryEntry(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}

	s.LogDebug(ctx, "History entry recorded",
		slog.String("entry_id", stored.EntryID),
		slog.String("user_id", stored.UserID),
	)
	return nil
}

// ListHistory returns one page of the user's history, newest first.
func (s *historyService) ListHistory(ctx context.Context, userID string, params dto.ListHistoryParams) (*dto.ListHistoryResponse, error) {
	limit := params.Limit
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit < 1 || limit > maxHistoryLimit {
		return nil, apperrors.NewValidationError(fmt.Sprintf("limit must be between 1 and %d", maxHistoryLimit))
	}

	var cursor portsrepo.HistoryCursor
	if params.NextToken != "" {
		createdAt, entryID, err := pagination.DecodeToken(params.NextToken)
		if err != nil {
			s.LogWarn(ctx, "Invalid history page token", slog.String("error", err.Error()))
			return nil, apperrors.NewValidationError("invalid nextToken")
		}
		cursor = portsrepo.HistoryCursor{CreatedAt: createdAt, EntryID: entryID}
	}

	// Fetch one extra row to learn whether another page exists.
	entries, err := s.historyRepo.FindHistory(ctx, userID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list history", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	var nextToken *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EntryID)
		nextToken = &token
	}

	resp := dto.ToListHistoryResponse(entries, nextToken)
	return &resp, nil
}

func (s *historyService) DeleteHistoryEntry(ctx context.Context, userID, entryID string) error {
	entryID = strings.TrimSpace(entryID)
	if _, err := uuid.Parse(entryID); err != nil {
		return apperrors.NewValidationError("invalid history entry ID")
	}

	if err := s.historyRepo.DeleteHistoryEntry(ctx, userID, entryID); err != nil {
		return fmt.Errorf("failed to delete history entry: %w", err)
	}

	s.LogInfo(ctx, "History entry deleted", slog.String("entry_id", entryID))
	return nil
}

func (s *historyService) ClearHistory(ctx context.Context, userID string) (int64, error) {
	removed, err := s.historyRepo.ClearHistory(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to clear history", slog.String("user_id", userID))
		return 0, fmt.Errorf("failed to clear history: %w", err)
	}

	s.LogInfo(ctx, "History cleared", slog.String("user_id", userID), slog.Int64("removed", removed))
	return removed, nil
}
