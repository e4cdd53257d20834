package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/moneyswap/internal/core/domain"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/dto"
	"github.com/SscSPs/moneyswap/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles read-only rate lookups.
type rateHandler struct {
	rateService portssvc.RateQuerySvc
}

func newRateHandler(rs portssvc.RateQuerySvc) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to exchange rates.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateQuerySvc) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("/latest/:base", h.getLatestRates)
		rates.GET("/history", h.getRateHistory)
	}
}

// getLatestRates godoc
// @Summary Get the latest rate table
// @Description Retrieves every rate quoted against the base currency
// @Tags rates
// @Produce  json
// @Param   base path string true "Base currency code" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.LatestRatesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Rate service unavailable"
// @Security BearerAuth
// @Router /rates/latest/{base} [get]
func (h *rateHandler) getLatestRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	base := c.Param("base")

	table, err := h.rateService.GetLatestRates(c.Request.Context(), base)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve rates")
		return
	}

	logger.Info("Latest rates retrieved", slog.String("base", base), slog.Int("count", len(table)))
	c.JSON(http.StatusOK, dto.ToLatestRatesResponse(domain.NormalizeCurrency(base), table))
}

// getRateHistory godoc
// @Summary Get historical rates
// @Description Retrieves the daily rate of a pair between two dates (inclusive)
// @Tags rates
// @Produce  json
// @Param   from query string true "Base currency code"
// @Param   to query string true "Target currency code"
// @Param   startDate query string true "Start date (YYYY-MM-DD)"
// @Param   endDate query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.RateHistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "no data"
// @Failure 502 {object} map[string]string "Rate service unavailable"
// @Security BearerAuth
// @Router /rates/history [get]
func (h *rateHandler) getRateHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.RateHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for GetRateHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	points, err := h.rateService.GetRateHistory(c.Request.Context(), query)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve rate history")
		return
	}

	logger.Info("Rate history retrieved", slog.Int("points", len(points)))
	c.JSON(http.StatusOK, dto.ToRateHistoryResponse(
		domain.NormalizeCurrency(query.From),
		domain.NormalizeCurrency(query.To),
		points,
	))
}
