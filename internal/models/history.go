package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// HistoryEntry is the row stored in conversion_history.
type HistoryEntry struct {
	EntryID      string          `db:"entry_id"`
	UserID       string          `db:"user_id"`
	Amount       decimal.Decimal `db:"amount"`
	FromCurrency string          `db:"from_currency"`
	ToCurrency   string          `db:"to_currency"`
	Result       string          `db:"result"`
	CreatedAt    time.Time       `db:"created_at"`
}
