package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/dto"
)

const (
	defaultMaxRangeDays = 366
	dateLayout          = "2006-01-02"
)

type rateQueryService struct {
	BaseService
	provider     portssvc.RateProvider
	maxRangeDays int
}

// NewRateQueryService creates the read-only rate service. maxRangeDays caps the
// length of a history query; non-positive values use the default.
func NewRateQueryService(provider portssvc.RateProvider, maxRangeDays int) portssvc.RateQuerySvc {
	if maxRangeDays <= 0 {
		maxRangeDays = defaultMaxRangeDays
	}
	return &rateQueryService{provider: provider, maxRangeDays: maxRangeDays}
}

func (s *rateQueryService) GetLatestRates(ctx context.Context, base string) (domain.RateTable, error) {
	code := domain.NormalizeCurrency(base)
	if !code.Valid() {
		return nil, apperrors.NewValidationError("base must be a 3-letter currency code")
	}

	table, err := s.provider.FetchLatestRates(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch latest rates", slog.String("base", code.String()))
		return nil, err
	}
	return table, nil
}

// GetRateHistory validates the query and asks the provider for the series.
func (s *rateQueryService) GetRateHistory(ctx context.Context, query dto.RateHistoryQuery) ([]domain.RateHistoryPoint, error) {
	base := domain.NormalizeCurrency(query.From)
	target := domain.NormalizeCurrency(query.To)
	if !base.Valid() || !target.Valid() {
		return nil, apperrors.NewValidationError("from and to must be 3-letter currency codes")
	}

	start, err := time.Parse(dateLayout, query.StartDate)
	if err != nil {
		return nil, apperrors.NewValidationError("startDate must be formatted as YYYY-MM-DD")
	}
	end, err := time.Parse(dateLayout, query.EndDate)
	if err != nil {
		return nil, apperrors.NewValidationError("endDate must be formatted as YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, apperrors.NewValidationError("startDate must not be after endDate")
	}
	if days := int(end.Sub(start).Hours() / 24); days > s.maxRangeDays {
		return nil, apperrors.NewValidationError(fmt.Sprintf("date range must not exceed %d days", s.maxRangeDays))
	}

	points, err := s.provider.FetchRateHistory(ctx, base, target, start, end)
	if err != nil {
		s.LogWarn(ctx, "Rate history lookup failed",
			slog.String("error", err.Error()),
			slog.String("pair", base.String()+"/"+target.String()),
		)
		return nil, err
	}
	return points, nil
}
