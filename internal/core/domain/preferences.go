package domain

import "time"

const (
	DefaultBaseCurrency   CurrencyCode = "USD"
	DefaultTargetCurrency CurrencyCode = "INR"
)

// Preferences is the per-user settings document.
type Preferences struct {
	UserID         string       `json:"userID"`
	DarkMode       bool         `json:"darkMode"`
	BaseCurrency   CurrencyCode `json:"baseCurrency"`
	TargetCurrency CurrencyCode `json:"targetCurrency"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// DefaultPreferences returns the document used for users who never saved one.
func DefaultPreferences(userID string) Preferences {
	return Preferences{
		UserID:         userID,
		BaseCurrency:   DefaultBaseCurrency,
		TargetCurrency: DefaultTargetCurrency,
	}
}

// DefaultPair is the pair selected when a session opens.
func (p Preferences) DefaultPair() CurrencyPair {
	pair := CurrencyPair{From: p.BaseCurrency, To: p.TargetCurrency}
	if pair.From.IsZero() {
		pair.From = DefaultBaseCurrency
	}
	if pair.To.IsZero() {
		pair.To = DefaultTargetCurrency
	}
	return pair
}
