package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondWithError maps a service error onto a status code and JSON body.
// fallback is the message used for unexpected errors.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		msg := err.Error()
		if errors.As(err, &appErr) && appErr.Message != "" {
			msg = appErr.Message
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	case errors.Is(err, apperrors.ErrNoDataInRange):
		logger.Info("No data in requested range")
		c.JSON(http.StatusNotFound, gin.H{"error": "no data"})
	case errors.Is(err, apperrors.ErrSessionNotFound):
		logger.Warn("No open session")
		c.JSON(http.StatusNotFound, gin.H{"error": "No open session"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrRateUnavailable):
		logger.Warn("Rate unavailable", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rate unavailable, try again later"})
	case errors.Is(err, apperrors.ErrTransport), errors.Is(err, apperrors.ErrMalformedResponse):
		logger.Error("Rate service failure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Rate service unavailable"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
