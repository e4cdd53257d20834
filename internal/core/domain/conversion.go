package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionStatus is the engine state for the selected pair.
type ConversionStatus string

const (
	StatusFetching    ConversionStatus = "FETCHING"
	StatusReady       ConversionStatus = "READY"
	StatusUnavailable ConversionStatus = "UNAVAILABLE"
)

// ConversionRequest is built per user action.
type ConversionRequest struct {
	Amount string
	From   CurrencyCode
	To     CurrencyCode
}

// ConversionResult is handed to the history store once computed.
type ConversionResult struct {
	UserID          string          `json:"-"`
	Amount          decimal.Decimal `json:"amount"`
	From            CurrencyCode    `json:"from"`
	To              CurrencyCode    `json:"to"`
	Rate            float64         `json:"rate"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Stale           bool            `json:"stale"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ResultString renders the converted amount with two fixed decimals.
func (r ConversionResult) ResultString() string {
	return r.ConvertedAmount.StringFixed(2)
}

// ConversionState is a snapshot of an engine.
type ConversionState struct {
	Pair       CurrencyPair     `json:"pair"`
	Status     ConversionStatus `json:"status"`
	Rate       float64          `json:"rate,omitempty"`
	Stale      bool             `json:"stale"`
	Generation uint64           `json:"generation"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}
