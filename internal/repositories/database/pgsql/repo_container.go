package pgsql

import (
	portsrepo "github.com/SscSPs/moneyswap/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL-backed repositories. The rate slot
// store lives outside the database and is supplied by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool, rateSlots portsrepo.RateSlotStore) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		HistoryRepo:    newPgxHistoryRepository(dbPool),
		PreferenceRepo: newPgxPreferenceRepository(dbPool),
		RateSlots:      rateSlots,
	}
}
