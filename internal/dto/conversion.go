package dto

import (
	"time"

	"github.com/SscSPs/moneyswap/internal/core/domain"
)

// SelectPairRequest selects the base/target pair for the caller's session.
type SelectPairRequest struct {
	From string `json:"from" binding:"required,currency"`
	To   string `json:"to" binding:"required,currency"`
}

// ConvertRequest converts an amount using the session's active rate.
// Amount is kept as a string so that non-numeric input reaches the engine and is
// rejected there with a validation message.
type ConvertRequest struct {
	Amount string `json:"amount" binding:"required"`
	From   string `json:"from" binding:"required,currency"`
	To     string `json:"to" binding:"required,currency"`
}

// ToDomain builds the engine request.
func (r ConvertRequest) ToDomain() domain.ConversionRequest {
	return domain.ConversionRequest{
		Amount: r.Amount,
		From:   domain.NormalizeCurrency(r.From),
		To:     domain.NormalizeCurrency(r.To),
	}
}

// ConversionStateResponse describes the session's current rate state.
type ConversionStateResponse struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Status    string    `json:"status"`
	Rate      *float64  `json:"rate,omitempty"`
	Stale     bool      `json:"stale"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToConversionStateResponse converts an engine snapshot into its API form.
func ToConversionStateResponse(s domain.ConversionState) ConversionStateResponse {
	resp := ConversionStateResponse{
		From:      s.Pair.From.String(),
		To:        s.Pair.To.String(),
		Status:    string(s.Status),
		Stale:     s.Stale,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Status == domain.StatusReady {
		rate := s.Rate
		resp.Rate = &rate
	}
	return resp
}

// ConversionResponse is returned by the convert endpoint.
type ConversionResponse struct {
	Amount          string    `json:"amount"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Rate            float64   `json:"rate"`
	ConvertedAmount string    `json:"convertedAmount"`
	Stale           bool      `json:"stale"`
	Timestamp       time.Time `json:"timestamp"`
}

// ToConversionResponse converts a domain result into its API form.
func ToConversionResponse(r *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		Amount:          r.Amount.String(),
		From:            r.From.String(),
		To:              r.To.String(),
		Rate:            r.Rate,
		ConvertedAmount: r.ResultString(),
		Stale:           r.Stale,
		Timestamp:       r.Timestamp,
	}
}
