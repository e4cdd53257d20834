package dto

import (
	"sort"

	"github.com/SscSPs/moneyswap/internal/core/domain"
)

// RateHistoryQuery holds the query parameters of the rate history endpoint.
type RateHistoryQuery struct {
	From      string `form:"from" binding:"required,currency"`
	To        string `form:"to" binding:"required,currency"`
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
}

// RateHistoryPointResponse is one day of the series.
type RateHistoryPointResponse struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// RateHistoryResponse is the series for a pair, ascending by date.
type RateHistoryResponse struct {
	From   string                     `json:"from"`
	To     string                     `json:"to"`
	Points []RateHistoryPointResponse `json:"points"`
}

// ToRateHistoryResponse converts the provider series into its API form.
func ToRateHistoryResponse(from, to domain.CurrencyCode, points []domain.RateHistoryPoint) RateHistoryResponse {
	resp := RateHistoryResponse{
		From:   from.String(),
		To:     to.String(),
		Points: make([]RateHistoryPointResponse, len(points)),
	}
	for i, p := range points {
		resp.Points[i] = RateHistoryPointResponse{Date: p.Date.Format("2006-01-02"), Rate: p.Rate}
	}
	return resp
}

// LatestRatesResponse is a full rate table for a base currency.
type LatestRatesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
	Codes []string           `json:"codes"`
}

// ToLatestRatesResponse converts a rate table into its API form with sorted codes.
func ToLatestRatesResponse(base domain.CurrencyCode, table domain.RateTable) LatestRatesResponse {
	resp := LatestRatesResponse{
		Base:  base.String(),
		Rates: make(map[string]float64, len(table)),
		Codes: make([]string, 0, len(table)),
	}
	for code, rate := range table {
		resp.Rates[code.String()] = rate
		resp.Codes = append(resp.Codes, code.String())
	}
	sort.Strings(resp.Codes)
	return resp
}
