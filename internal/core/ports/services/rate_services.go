package services

import (
	"context"
	"time"

	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/SscSPs/moneyswap/internal/dto"
)

// RateProvider translates currency-pair requests into calls against the remote
// rate services. Implementations never retry.
type RateProvider interface {
	// FetchLatestRates returns the full table quoted against base.
	FetchLatestRates(ctx context.Context, base domain.CurrencyCode) (domain.RateTable, error)

	// FetchRateHistory returns the base->target series for the inclusive date range,
	// ascending by date.
	FetchRateHistory(ctx context.Context, base, target domain.CurrencyCode, start, end time.Time) ([]domain.RateHistoryPoint, error)
}

// RateQuerySvc exposes read-only rate lookups to handlers.
type RateQuerySvc interface {
	// GetLatestRates returns the current table for base.
	GetLatestRates(ctx context.Context, base string) (domain.RateTable, error)

	// GetRateHistory validates the query and returns the series.
	GetRateHistory(ctx context.Context, query dto.RateHistoryQuery) ([]domain.RateHistoryPoint, error)
}
