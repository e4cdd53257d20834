package mapping

import (
	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/SscSPs/moneyswap/internal/models"
)

// ToModelHistoryEntry converts a domain HistoryEntry to a model HistoryEntry
func ToModelHistoryEntry(d domain.HistoryEntry) models.HistoryEntry {
	return models.HistoryEntry{
		EntryID:      d.EntryID,
		UserID:       d.UserID,
		Amount:       d.Amount,
		FromCurrency: d.From.String(),
		ToCurrency:   d.To.String(),
		Result:       d.Result,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainHistoryEntry converts a model HistoryEntry to a domain HistoryEntry
func ToDomainHistoryEntry(m models.HistoryEntry) domain.HistoryEntry {
	return domain.HistoryEntry{
		EntryID:   m.EntryID,
		UserID:    m.UserID,
		Amount:    m.Amount,
		From:      domain.CurrencyCode(m.FromCurrency),
		To:        domain.CurrencyCode(m.ToCurrency),
		Result:    m.Result,
		CreatedAt: m.CreatedAt,
	}
}

// ToDomainHistoryEntrySlice converts a slice of model entries
func ToDomainHistoryEntrySlice(ms []models.HistoryEntry) []domain.HistoryEntry {
	entries := make([]domain.HistoryEntry, len(ms))
	for i, m := range ms {
		entries[i] = ToDomainHistoryEntry(m)
	}
	return entries
}
