package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/dto"
	"github.com/SscSPs/moneyswap/internal/middleware"
	"github.com/gin-gonic/gin"
)

// preferenceHandler handles the caller's settings document.
type preferenceHandler struct {
	preferenceService portssvc.PreferenceSvcFacade
}

func newPreferenceHandler(ps portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{preferenceService: ps}
}

// registerPreferenceRoutes registers routes related to user preferences.
func registerPreferenceRoutes(rg *gin.RouterGroup, preferenceService portssvc.PreferenceSvcFacade) {
	h := newPreferenceHandler(preferenceService)

	prefs := rg.Group("/preferences")
	{
		prefs.GET("", h.getPreferences)
		prefs.PUT("", h.updatePreferences)
	}
}

// getPreferences godoc
// @Summary Get preferences
// @Tags preferences
// @Produce  json
// @Success 200 {object} dto.PreferencesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /preferences [get]
func (h *preferenceHandler) getPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	prefs, err := h.preferenceService.GetPreferences(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve preferences")
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// updatePreferences godoc
// @Summary Update preferences
// @Description Replaces the dark mode flag and default currency pair
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   preferences body dto.UpdatePreferencesRequest true "New preferences"
// @Success 200 {object} dto.PreferencesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /preferences [put]
func (h *preferenceHandler) updatePreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePreferences", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	prefs, err := h.preferenceService.UpdatePreferences(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update preferences")
		return
	}

	logger.Info("Preferences updated")
	c.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}
