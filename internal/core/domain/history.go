package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry is a persisted conversion for a user.
type HistoryEntry struct {
	EntryID   string          `json:"entryID"`
	UserID    string          `json:"userID"`
	Amount    decimal.Decimal `json:"amount"`
	From      CurrencyCode    `json:"from"`
	To        CurrencyCode    `json:"to"`
	Result    string          `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewHistoryEntry maps a conversion result to the record appended to the store.
// CreatedAt is left zero; the store assigns it.
func NewHistoryEntry(entryID string, r ConversionResult) HistoryEntry {
	return HistoryEntry{
		EntryID: entryID,
		UserID:  r.UserID,
		Amount:  r.Amount,
		From:    r.From,
		To:      r.To,
		Result:  r.ResultString(),
	}
}
