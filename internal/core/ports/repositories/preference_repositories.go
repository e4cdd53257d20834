package repositories

import (
	"context"

	"github.com/SscSPs/moneyswap/internal/core/domain"
)

// PreferenceReader defines read operations for user preferences
type PreferenceReader interface {
	// FindPreferences returns apperrors.ErrNotFound when the user never saved any.
	FindPreferences(ctx context.Context, userID string) (*domain.Preferences, error)
}

// PreferenceWriter defines write operations for user preferences
type PreferenceWriter interface {
	// SavePreferences upserts the whole document.
	SavePreferences(ctx context.Context, prefs domain.Preferences) error
}

// PreferenceRepositoryFacade combines all preference-related repository interfaces
type PreferenceRepositoryFacade interface {
	PreferenceReader
	PreferenceWriter
}
