package handlers

import (
	"legal-advisor-backend/models"
	"legal-advisor-backend/service"

	"github.com/gin-gonic/gin"
)

// HistoryHandler handles JSON API requests for session history
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GetHistory handles GET /api/history
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	result, err := h.historyService.GetHistory(c.Request.Context(), service.GetHistoryRequest{
		SessionID:  sessionID(c),
		Categories: categoryFilter(c),
	})
	if err != nil {
		respondErrorFor(c, err)
		return
	}

	respondOK(c, result)
}

// ClearHistory handles DELETE /api/history
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	if err := h.historyService.ClearHistory(c.Request.Context(), sessionID(c)); err != nil {
		respondErrorFor(c, err)
		return
	}

	respondOK(c, gin.H{"cleared": true})
}

func categoryFilter(c *gin.Context) []models.Category {
	values := c.QueryArray("category")
	categories := make([]models.Category, 0, len(values))
	for _, v := range values {
		if v != "" {
			categories = append(categories, models.Category(v))
		}
	}
	return categories
}
