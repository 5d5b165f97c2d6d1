package handlers

import (
	"fmt"
	"net/http"

	"legal-advisor-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds what NewRouter needs to wire the HTTP surface
type RouterConfig struct {
	QueryService   *service.QueryService
	HistoryService *service.HistoryService
	Logger         *zap.Logger
	SessionCookie  string
}

// NewRouter builds the gin engine serving the browser UI and the JSON API
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	tmpl, err := LoadTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	queryHandler := NewQueryHandler(cfg.QueryService, cfg.HistoryService, logger)
	historyHandler := NewHistoryHandler(cfg.HistoryService)
	pageHandler := NewPageHandler(cfg.QueryService, cfg.HistoryService, logger)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))
	r.SetHTMLTemplate(tmpl)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	session := r.Group("/", SessionMiddleware(cfg.SessionCookie))
	{
		// Browser UI
		session.GET("/", pageHandler.Index)
		session.POST("/query", pageHandler.SubmitQuery)
		session.GET("/history", pageHandler.History)
		session.GET("/about", pageHandler.About)
	}

	api := r.Group("/api", SessionMiddleware(cfg.SessionCookie))
	{
		api.GET("/options", queryHandler.Options)
		api.POST("/query", queryHandler.Query)
		api.GET("/history", historyHandler.GetHistory)
		api.DELETE("/history", historyHandler.ClearHistory)
	}

	return r, nil
}
