package rateapi

import (
	"context"
	"fmt"
	"math"
	"net/url"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/SscSPs/moneyswap/internal/core/domain"
	"github.com/tidwall/gjson"
)

// FetchLatestRates loads the full rate table quoted against base.
// A partial table is never returned: one bad rate fails the whole payload.
func (c *Client) FetchLatestRates(ctx context.Context, base domain.CurrencyCode) (domain.RateTable, error) {
	if base.IsZero() {
		return nil, apperrors.NewValidationError("base currency is required")
	}

	body, err := c.get(ctx, endpointLatest, c.latestURL+"/"+url.PathEscape(base.String()))
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: latest rates body is not valid JSON", apperrors.ErrMalformedResponse)
	}

	// open.er-api reports failures in-band with a 200 status
	if result := gjson.GetBytes(body, "result"); result.Exists() && result.String() != "success" {
		return nil, fmt.Errorf("%w: provider reported %q (%s)", apperrors.ErrTransport,
			result.String(), gjson.GetBytes(body, "error-type").String())
	}

	rates := gjson.GetBytes(body, "rates")
	if !rates.IsObject() {
		return nil, fmt.Errorf("%w: latest rates body has no rates object", apperrors.ErrMalformedResponse)
	}

	table := domain.RateTable{}
	var parseErr error
	rates.ForEach(func(key, value gjson.Result) bool {
		rate := value.Float()
		if value.Type != gjson.Number || rate <= 0 || math.IsInf(rate, 0) {
			parseErr = fmt.Errorf("%w: bad rate %q for %s", apperrors.ErrMalformedResponse, value.Raw, key.String())
			return false
		}
		table[domain.NormalizeCurrency(key.String())] = rate
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: empty rate table for %s", apperrors.ErrMalformedResponse, base)
	}

	return table, nil
}
