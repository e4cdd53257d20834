package repositories

import (
	"context"

	"github.com/SscSPs/moneyswap/internal/core/domain"
)

// RateSlotStore is the local key-value persistence holding the fallback rate.
// Each key is a single slot: Set overwrites, nothing appends.
type RateSlotStore interface {
	// GetCachedRate returns apperrors.ErrNotFound when the slot is empty.
	GetCachedRate(ctx context.Context, key string) (*domain.CachedRate, error)

	// SetCachedRate replaces the slot content.
	SetCachedRate(ctx context.Context, key string, rate domain.CachedRate) error
}
