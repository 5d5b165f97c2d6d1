package handlers

import (
	"net/http"
	"strings"

	"legal-advisor-backend/models"
	"legal-advisor-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QueryHandler handles JSON API requests for legal queries
type QueryHandler struct {
	queryService   *service.QueryService
	historyService *service.HistoryService
	logger         *zap.Logger
}

// NewQueryHandler creates a new query handler
func NewQueryHandler(queryService *service.QueryService, historyService *service.HistoryService, logger *zap.Logger) *QueryHandler {
	return &QueryHandler{
		queryService:   queryService,
		historyService: historyService,
		logger:         logger,
	}
}

// Query handles POST /api/query
func (h *QueryHandler) Query(c *gin.Context) {
	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	jurisdiction := req.EffectiveJurisdiction()
	if jurisdiction == "" {
		jurisdiction = models.JurisdictionFederal
	}

	if err := service.ValidateQuery(req.Query, req.Category, jurisdiction); err != nil {
		respondErrorFor(c, err)
		return
	}

	response, err := answerAndRecord(c, h.queryService, h.historyService, h.logger, strings.TrimSpace(req.Query), req.Category, jurisdiction)
	if err != nil {
		respondErrorFor(c, err)
		return
	}

	respondOK(c, response)
}

// Options handles GET /api/options
func (h *QueryHandler) Options(c *gin.Context) {
	respondOK(c, gin.H{
		"categories":    models.AllCategories(),
		"jurisdictions": models.AllJurisdictions(),
	})
}

// answerAndRecord runs the query and, on success, appends it to the caller's session history.
// A failure to record history is logged but does not discard the answer.
func answerAndRecord(
	c *gin.Context,
	queryService *service.QueryService,
	historyService *service.HistoryService,
	logger *zap.Logger,
	query string,
	category models.Category,
	jurisdiction models.Jurisdiction,
) (*models.AnalysisResponse, error) {
	result, err := queryService.ProcessQuery(c.Request.Context(), service.ProcessQueryRequest{
		Query:        query,
		Category:     category,
		Jurisdiction: jurisdiction,
	})
	if err != nil {
		return nil, err
	}

	_, err = historyService.RecordQuery(c.Request.Context(), service.RecordQueryRequest{
		SessionID:    sessionID(c),
		Query:        query,
		Category:     category,
		Jurisdiction: jurisdiction,
		Response:     result.AnalysisResponse,
	})
	if err != nil {
		logger.Warn("failed to record history", zap.Error(err))
	}

	return &result.AnalysisResponse, nil
}
