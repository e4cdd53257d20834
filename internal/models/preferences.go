package models

import "time"

// Preferences is the row stored in user_preferences.
type Preferences struct {
	UserID         string    `db:"user_id"`
	DarkMode       bool      `db:"dark_mode"`
	BaseCurrency   string    `db:"base_currency"`
	TargetCurrency string    `db:"target_currency"`
	UpdatedAt      time.Time `db:"updated_at"`
}
