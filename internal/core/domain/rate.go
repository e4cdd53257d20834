package domain

import "time"

// RateTable maps a currency code to its factor against an implicit base currency.
// A table is immutable once returned by a provider.
type RateTable map[CurrencyCode]float64

// Lookup returns the rate for code, if present.
func (t RateTable) Lookup(code CurrencyCode) (float64, bool) {
	rate, ok := t[code]
	return rate, ok
}

// RateHistoryPoint is one day of a historical series.
type RateHistoryPoint struct {
	Date time.Time `json:"date"`
	Rate float64   `json:"rate"`
}

// CachedRate is the content of the single fallback slot.
type CachedRate struct {
	Pair     CurrencyPair `json:"pair"`
	Rate     float64      `json:"rate"`
	StoredAt time.Time    `json:"storedAt"`
}

// ValidFor reports whether the cached value was produced by the given pair.
func (c CachedRate) ValidFor(pair CurrencyPair) bool {
	return c.Pair == pair && c.Rate > 0
}
