package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/dto"
	"github.com/SscSPs/moneyswap/internal/middleware"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles sign-in and sign-out of the conversion context.
type sessionHandler struct {
	sessionService portssvc.SessionSvc
}

func newSessionHandler(ss portssvc.SessionSvc) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// registerSessionRoutes registers routes related to sessions.
func registerSessionRoutes(rg *gin.RouterGroup, sessionService portssvc.SessionSvc) {
	h := newSessionHandler(sessionService)

	session := rg.Group("/session")
	{
		session.POST("", h.openSession)
		session.DELETE("", h.closeSession)
	}
}

// openSession godoc
// @Summary Open a conversion session
// @Description Loads the caller's preferences and fetches the rate of their default pair
// @Tags session
// @Produce  json
// @Success 201 {object} dto.SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to open session"
// @Security BearerAuth
// @Router /session [post]
func (h *sessionHandler) openSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	prefs, state, err := h.sessionService.OpenSession(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to open session")
		return
	}

	logger.Info("Session opened", slog.String("status", string(state.Status)))
	c.JSON(http.StatusCreated, dto.SessionResponse{
		UserID:      userID,
		Preferences: dto.ToPreferencesResponse(prefs),
		Conversion:  dto.ToConversionStateResponse(state),
	})
}

// closeSession godoc
// @Summary Close the conversion session
// @Description Waits for pending background writes and drops the caller's session
// @Tags session
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No open session"
// @Security BearerAuth
// @Router /session [delete]
func (h *sessionHandler) closeSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.sessionService.CloseSession(c.Request.Context(), userID); err != nil {
		respondWithError(c, logger, err, "Failed to close session")
		return
	}

	logger.Info("Session closed")
	c.Status(http.StatusNoContent)
}
