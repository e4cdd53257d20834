package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/dto"
)

type preferenceService struct {
	BaseService
	preferenceRepo portsrepo.PreferenceRepositoryFacade
}

// NewPreferenceService creates a new preference service.
func NewPreferenceService(preferenceRepo portsrepo.PreferenceRepositoryFacade) portssvc.PreferenceSvcFacade {
	return &preferenceService{preferenceRepo: preferenceRepo}
}

// GetPreferences returns the user's document, or the defaults when none was saved.
func (s *preferenceService) GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	prefs, err := s.preferenceRepo.FindPreferences(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultPreferences(userID)
			return &defaults, nil
		}
		s.LogError(ctx, err, "Failed to load preferences", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	return prefs, nil
}

func (s *preferenceService) UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.Preferences, error) {
	base := domain.NormalizeCurrency(req.BaseCurrency)
	target := domain.NormalizeCurrency(req.TargetCurrency)
	if !base.Valid() || !target.Valid() {
		return nil, apperrors.NewValidationError("currencies must be 3-letter codes")
	}

	prefs := domain.Preferences{
		UserID:         userID,
		DarkMode:       req.DarkMode,
		BaseCurrency:   base,
		TargetCurrency: target,
		UpdatedAt:      time.Now().UTC(),
	}
	if err := s.preferenceRepo.SavePreferences(ctx, prefs); err != nil {
		s.LogError(ctx, err, "Failed to save preferences", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}

	s.LogInfo(ctx, "Preferences updated",
		slog.String("user_id", userID),
		slog.String("pair", prefs.DefaultPair().String()),
	)
	return s.GetPreferences(ctx, userID)
}
