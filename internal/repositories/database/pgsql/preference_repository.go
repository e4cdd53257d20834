package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	"github.com/SscSPs/moneyswap/internal/models"
	"github.com/SscSPs/moneyswap/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPreferenceRepository stores per-user preference documents.
type PgxPreferenceRepository struct {
	BaseRepository
}

// newPgxPreferenceRepository creates a new repository for user preferences.
func newPgxPreferenceRepository(pool *pgxpool.Pool) portsrepo.PreferenceRepositoryFacade {
	return &PgxPreferenceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PreferenceRepositoryFacade = (*PgxPreferenceRepository)(nil)

// FindPreferences returns the stored document or apperrors.ErrNotFound.
func (r *PgxPreferenceRepository) FindPreferences(ctx context.Context, userID string) (*domain.Preferences, error) {
	query := `
		SELECT user_id, dark_mode, base_currency, target_currency, updated_at
		FROM user_preferences
		WHERE user_id = $1;
	`
	var m models.Preferences
	err := r.Pool.QueryRow(ctx, query, userID).Scan(
		&m.UserID,
		&m.DarkMode,
		&m.BaseCurrency,
		&m.TargetCurrency,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preferences for user %s: %w", userID, err)
	}

	prefs := mapping.ToDomainPreferences(m)
	return &prefs, nil
}

// SavePreferences upserts the whole document.
func (r *PgxPreferenceRepository) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	m := mapping.ToModelPreferences(prefs)
	query := `
		INSERT INTO user_preferences (user_id, dark_mode, base_currency, target_currency, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			dark_mode = EXCLUDED.dark_mode,
			base_currency = EXCLUDED.base_currency,
			target_currency = EXCLUDED.target_currency,
			updated_at = EXCLUDED.updated_at;
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.DarkMode, m.BaseCurrency, m.TargetCurrency, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save preferences for user %s: %w", m.UserID, err)
	}
	return nil
}
