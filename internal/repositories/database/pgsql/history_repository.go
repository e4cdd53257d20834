package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	"github.com/SscSPs/moneyswap/internal/models"
	"github.com/SscSPs/moneyswap/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxHistoryRepository stores conversion history in PostgreSQL.
type PgxHistoryRepository struct {
	BaseRepository
}

// newPgxHistoryRepository creates a new repository for conversion history.
func newPgxHistoryRepository(pool *pgxpool.Pool) portsrepo.HistoryRepositoryFacade {
	return &PgxHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.HistoryRepositoryFacade = (*PgxHistoryRepository)(nil)

const (
	historyTable = "conversion_history"

	selectHistoryFields = `entry_id, user_id, amount, from_currency, to_currency, result, created_at`

	insertHistoryQuery = `
		INSERT INTO ` + historyTable + ` (entry_id, user_id, amount, from_currency, to_currency, result)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	findHistoryFirstPageQuery = `
		SELECT ` + selectHistoryFields + `
		FROM ` + historyTable + `
		WHERE user_id = $1
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $2`

	findHistoryAfterCursorQuery = `
		SELECT ` + selectHistoryFields + `
		FROM ` + historyTable + `
		WHERE user_id = $1 AND (created_at, entry_id) < ($2, $3)
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $4`

	deleteHistoryEntryQuery = `DELETE FROM ` + historyTable + ` WHERE user_id = $1 AND entry_id = $2`

	clearHistoryQuery = `DELETE FROM ` + historyTable + ` WHERE user_id = $1`
)

// AppendHistoryEntry inserts an entry; created_at is assigned by the database.
func (r *PgxHistoryRepository) AppendHistoryEntry(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	m := mapping.ToModelHistoryEntry(entry)
	err := r.Pool.QueryRow(ctx, insertHistoryQuery,
		m.EntryID,
		m.UserID,
		m.Amount,
		m.FromCurrency,
		m.ToCurrency,
		m.Result,
	).Scan(&m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to append history entry %s: %w", apperrors.ErrPersistence, m.EntryID, err)
	}

	saved := mapping.ToDomainHistoryEntry(m)
	return &saved, nil
}

// FindHistory returns up to limit entries, newest first, strictly after cursor.
func (r *PgxHistoryRepository) FindHistory(ctx context.Context, userID string, limit int, cursor portsrepo.HistoryCursor) ([]domain.HistoryEntry, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if cursor.CreatedAt.IsZero() {
		rows, err = r.Pool.Query(ctx, findHistoryFirstPageQuery, userID, limit)
	} else {
		rows, err = r.Pool.Query(ctx, findHistoryAfterCursorQuery, userID, cursor.CreatedAt, cursor.EntryID, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query history for user %s: %w", userID, err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.HistoryEntry, error) {
		var m models.HistoryEntry
		err := row.Scan(
			&m.EntryID,
			&m.UserID,
			&m.Amount,
			&m.FromCurrency,
			&m.ToCurrency,
			&m.Result,
			&m.CreatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan history: %w", err)
	}

	return mapping.ToDomainHistoryEntrySlice(modelEntries), nil
}

// DeleteHistoryEntry removes one entry owned by userID.
func (r *PgxHistoryRepository) DeleteHistoryEntry(ctx context.Context, userID, entryID string) error {
	tag, err := r.Pool.Exec(ctx, deleteHistoryEntryQuery, userID, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete history entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("history entry " + entryID + " not found")
	}
	return nil
}

// ClearHistory removes every entry of userID and returns how many were deleted.
func (r *PgxHistoryRepository) ClearHistory(ctx context.Context, userID string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, clearHistoryQuery, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history for user %s: %w", userID, err)
	}
	return tag.RowsAffected(), nil
}
