package dto

import (
	"time"

	"github.com/SscSPs/moneyswap/internal/core/domain"
)

// UpdatePreferencesRequest replaces the caller's preference document.
type UpdatePreferencesRequest struct {
	DarkMode       bool   `json:"darkMode"`
	BaseCurrency   string `json:"baseCurrency" binding:"required,currency"`
	TargetCurrency string `json:"targetCurrency" binding:"required,currency"`
}

// PreferencesResponse is the API form of a preference document.
type PreferencesResponse struct {
	DarkMode       bool       `json:"darkMode"`
	BaseCurrency   string     `json:"baseCurrency"`
	TargetCurrency string     `json:"targetCurrency"`
	UpdatedAt      *time.Time `json:"updatedAt,omitempty"`
}

// ToPreferencesResponse converts a domain document.
func ToPreferencesResponse(p *domain.Preferences) PreferencesResponse {
	resp := PreferencesResponse{
		DarkMode:       p.DarkMode,
		BaseCurrency:   p.BaseCurrency.String(),
		TargetCurrency: p.TargetCurrency.String(),
	}
	if !p.UpdatedAt.IsZero() {
		updated := p.UpdatedAt
		resp.UpdatedAt = &updated
	}
	return resp
}
