package rateapi

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/tidwall/gjson"
)

// DateLayout is the calendar-date format used by the historical-rates service.
const DateLayout = "2006-01-02"

// FetchRateHistory loads the base->target series between start and end (inclusive).
// Days the service omits are absent from the result; nothing is interpolated.
func (c *Client) FetchRateHistory(ctx context.Context, base, target domain.CurrencyCode, start, end time.Time) ([]domain.RateHistoryPoint, error) {
	if base.IsZero() || target.IsZero() {
		return nil, apperrors.NewValidationError("base and target currencies are required")
	}
	start, end = truncateDay(start), truncateDay(end)
	if start.After(end) {
		return nil, apperrors.NewValidationError("startDate must not be after endDate")
	}

	query := url.Values{}
	query.Set("from", base.String())
	query.Set("to", target.String())
	rawURL := fmt.Sprintf("%s/%s..%s?%s", c.historyURL, start.Format(DateLayout), end.Format(DateLayout), query.Encode())

	body, err := c.get(ctx, endpointHistory, rawURL)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: history body is not valid JSON", apperrors.ErrMalformedResponse)
	}

	rates := gjson.GetBytes(body, "rates")
	if !rates.IsObject() {
		return nil, fmt.Errorf("%w: history body has no rates object", apperrors.ErrMalformedResponse)
	}

	points := make([]domain.RateHistoryPoint, 0)
	var parseErr error
	rates.ForEach(func(key, day gjson.Result) bool {
		date, err := time.Parse(DateLayout, key.String())
		if err != nil {
			parseErr = fmt.Errorf("%w: bad history date %q", apperrors.ErrMalformedResponse, key.String())
			return false
		}
		if date.Before(start) || date.After(end) {
			return true
		}
		value := day.Get(target.String())
		if !value.Exists() {
			return true
		}
		if value.Type != gjson.Number || value.Float() <= 0 {
			parseErr = fmt.Errorf("%w: bad rate %q on %s", apperrors.ErrMalformedResponse, value.Raw, key.String())
			return false
		}
		points = append(points, domain.RateHistoryPoint{Date: date, Rate: value.Float()})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("%w: %s/%s between %s and %s", apperrors.ErrNoDataInRange,
			base, target, start.Format(DateLayout), end.Format(DateLayout))
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
