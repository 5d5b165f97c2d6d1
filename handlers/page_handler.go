package handlers

import (
	"embed"
	"html/template"
	"net/http"
	"strings"

	"legal-advisor-backend/models"
	"legal-advisor-backend/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

// LoadTemplates parses the embedded HTML pages for gin's renderer
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"truncate": truncate,
		"inc":      func(i int) int { return i + 1 },
	}).ParseFS(templateFS, "templates/*.html")
}

// PageHandler serves the browser UI
type PageHandler struct {
	queryService   *service.QueryService
	historyService *service.HistoryService
	logger         *zap.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(queryService *service.QueryService, historyService *service.HistoryService, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		queryService:   queryService,
		historyService: historyService,
		logger:         logger,
	}
}

type queryPage struct {
	Active        string
	Categories    []models.Category
	Jurisdictions []models.Jurisdiction
	Query         string
	Category      models.Category
	Jurisdiction  models.Jurisdiction
	Warning       string
	Error         string
	Result        *models.AnalysisResponse
}

func newQueryPage() queryPage {
	return queryPage{
		Active:        "query",
		Categories:    models.AllCategories(),
		Jurisdictions: models.AllJurisdictions(),
		Category:      models.CategoryCriminal,
		Jurisdiction:  models.JurisdictionFederal,
	}
}

// Index handles GET /
func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "query.html", newQueryPage())
}

// SubmitQuery handles POST /query
func (h *PageHandler) SubmitQuery(c *gin.Context) {
	page := newQueryPage()
	page.Query = c.PostForm("query")
	page.Category = models.Category(c.PostForm("category"))
	page.Jurisdiction = models.Jurisdiction(c.PostForm("jurisdiction"))

	if err := service.ValidateQuery(page.Query, page.Category, page.Jurisdiction); err != nil {
		status, _ := classifyError(err)
		page.Warning = capitalize(err.Error()) + "."
		c.HTML(status, "query.html", page)
		return
	}

	result, err := answerAndRecord(c, h.queryService, h.historyService, h.logger, strings.TrimSpace(page.Query), page.Category, page.Jurisdiction)
	if err != nil {
		status, _ := classifyError(err)
		page.Error = "An error occurred: " + err.Error()
		c.HTML(status, "query.html", page)
		return
	}

	page.Result = result
	c.HTML(http.StatusOK, "query.html", page)
}

type historyPage struct {
	Active     string
	Categories []models.Category
	Selected   map[models.Category]bool
	Entries    []models.HistoryEntry
	Stats      models.HistoryStats
	Error      string
}

// History handles GET /history
func (h *PageHandler) History(c *gin.Context) {
	filter := categoryFilter(c)
	page := historyPage{
		Active:     "history",
		Categories: models.AllCategories(),
		Selected:   make(map[models.Category]bool, len(filter)),
	}
	for _, category := range filter {
		page.Selected[category] = true
	}

	result, err := h.historyService.GetHistory(c.Request.Context(), service.GetHistoryRequest{
		SessionID:  sessionID(c),
		Categories: filter,
	})
	if err != nil {
		page.Error = "Error displaying history: " + err.Error()
		c.HTML(http.StatusInternalServerError, "history.html", page)
		return
	}

	page.Entries = result.Entries
	page.Stats = result.Stats
	c.HTML(http.StatusOK, "history.html", page)
}

// About handles GET /about
func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{"Active": "about"})
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
