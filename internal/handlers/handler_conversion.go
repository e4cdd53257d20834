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

// conversionHandler exposes the caller's conversion engine.
type conversionHandler struct {
	sessionService portssvc.SessionSvc
}

func newConversionHandler(ss portssvc.SessionSvc) *conversionHandler {
	return &conversionHandler{sessionService: ss}
}

// registerConversionRoutes registers routes related to conversions.
func registerConversionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvc) {
	h := newConversionHandler(sessionService)

	conversion := rg.Group("/conversion")
	{
		conversion.PUT("/pair", h.selectPair)
		conversion.GET("/rate", h.getRate)
		conversion.POST("/convert", h.convert)
	}
}

// selectPair godoc
// @Summary Select the currency pair
// @Description Fetches the live rate for the pair, falling back to the last known rate
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   pair body dto.SelectPairRequest true "Pair to select"
// @Success 200 {object} dto.ConversionStateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /conversion/pair [put]
func (h *conversionHandler) selectPair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SelectPairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SelectPair", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	engine, err := h.sessionService.Engine(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to open session")
		return
	}

	state := engine.SelectPair(c.Request.Context(), domain.NewCurrencyPair(req.From, req.To))
	logger.Info("Pair selected",
		slog.String("pair", state.Pair.String()),
		slog.String("status", string(state.Status)),
	)
	c.JSON(http.StatusOK, dto.ToConversionStateResponse(state))
}

// getRate godoc
// @Summary Get the active rate
// @Description Returns the state of the caller's selected pair
// @Tags conversion
// @Produce  json
// @Success 200 {object} dto.ConversionStateResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No open session"
// @Security BearerAuth
// @Router /conversion/rate [get]
func (h *conversionHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	engine, err := h.sessionService.LookupEngine(userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionStateResponse(engine.State()))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts the amount with the active rate and records it in the caller's history
// @Tags conversion
// @Accept  json
// @Produce  json
// @Param   conversion body dto.ConvertRequest true "Amount and pair"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Rate unavailable"
// @Security BearerAuth
// @Router /conversion/convert [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	engine, err := h.sessionService.Engine(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to open session")
		return
	}

	result, err := engine.Convert(c.Request.Context(), req.ToDomain())
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert amount")
		return
	}

	logger.Info("Amount converted",
		slog.String("pair", result.From.String()+"/"+result.To.String()),
		slog.Bool("stale", result.Stale),
	)
	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
