package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/dto"
	"github.com/SscSPs/moneyswap/internal/middleware"
	"github.com/gin-gonic/gin"
)

// historyHandler handles the caller's conversion history.
type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

func newHistoryHandler(hs portssvc.HistorySvcFacade) *historyHandler {
	return &historyHandler{historyService: hs}
}

// registerHistoryRoutes registers routes related to conversion history.
func registerHistoryRoutes(rg *gin.RouterGroup, historyService portssvc.HistorySvcFacade) {
	h := newHistoryHandler(historyService)

	history := rg.Group("/history")
	{
		history.GET("", h.listHistory)
		history.DELETE("", h.clearHistory)
		history.DELETE("/:entryID", h.deleteHistoryEntry)
	}
}

// listHistory godoc
// @Summary List conversion history
// @Description Retrieves the caller's conversions, newest first
// @Tags history
// @Produce  json
// @Param   limit query int false "Page size (1-100, default 20)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListHistoryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListHistory", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	resp, err := h.historyService.ListHistory(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list history")
		return
	}

	logger.Info("History listed", slog.Int("count", len(resp.Entries)))
	c.JSON(http.StatusOK, resp)
}

// deleteHistoryEntry godoc
// @Summary Delete a history entry
// @Tags history
// @Param   entryID path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /history/{entryID} [delete]
func (h *historyHandler) deleteHistoryEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("entryID")
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.historyService.DeleteHistoryEntry(c.Request.Context(), userID, entryID); err != nil {
		respondWithError(c, logger, err, "Failed to delete history entry")
		return
	}

	logger.Info("History entry deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}

// clearHistory godoc
// @Summary Clear conversion history
// @Description Removes every history entry of the caller
// @Tags history
// @Produce  json
// @Success 200 {object} dto.ClearHistoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /history [delete]
func (h *historyHandler) clearHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	removed, err := h.historyService.ClearHistory(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to clear history")
		return
	}

	c.JSON(http.StatusOK, dto.ClearHistoryResponse{Removed: removed})
}
