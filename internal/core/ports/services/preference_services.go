package services

import (
	"context"

	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/SscSPs/moneyswap/internal/dto"
)

// PreferenceReaderSvc defines read operations for user preferences
type PreferenceReaderSvc interface {
	// GetPreferences returns the stored document or the defaults.
	GetPreferences(ctx context.Context, userID string) (*domain.Preferences, error)
}

// PreferenceWriterSvc defines write operations for user preferences
type PreferenceWriterSvc interface {
	UpdatePreferences(ctx context.Context, userID string, req dto.UpdatePreferencesRequest) (*domain.Preferences, error)
}

// PreferenceSvcFacade combines all preference-related service interfaces
type PreferenceSvcFacade interface {
	PreferenceReaderSvc
	PreferenceWriterSvc
}
