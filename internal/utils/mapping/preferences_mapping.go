package mapping

import (
	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/SscSPs/moneyswap/internal/models"
)

// ToModelPreferences converts domain Preferences to model Preferences
func ToModelPreferences(d domain.Preferences) models.Preferences {
	return models.Preferences{
		UserID:         d.UserID,
		DarkMode:       d.DarkMode,
		BaseCurrency:   d.BaseCurrency.String(),
		TargetCurrency: d.TargetCurrency.String(),
		UpdatedAt:      d.UpdatedAt,
	}
}

// ToDomainPreferences converts model Preferences to domain Preferences
func ToDomainPreferences(m models.Preferences) domain.Preferences {
	return domain.Preferences{
		UserID:         m.UserID,
		DarkMode:       m.DarkMode,
		BaseCurrency:   domain.CurrencyCode(m.BaseCurrency),
		TargetCurrency: domain.CurrencyCode(m.TargetCurrency),
		UpdatedAt:      m.UpdatedAt,
	}
}
