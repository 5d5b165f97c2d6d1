package service

import (
	"context"
	"errors"

	"legal-advisor-backend/models"
	"legal-advisor-backend/repository"

	"github.com/google/uuid"
)

// HistoryService records answered queries and summarises a session's history
type HistoryService struct {
	historyRepo *repository.HistoryRepository
}

// HistoryServiceOption is a functional option for HistoryService
type HistoryServiceOption func(*HistoryService)

// WithHistoryRepository sets the history repository
func WithHistoryRepository(repo *repository.HistoryRepository) HistoryServiceOption {
	return func(s *HistoryService) {
		s.historyRepo = repo
	}
}

// NewHistoryService creates a new history service
func NewHistoryService(opts ...HistoryServiceOption) *HistoryService {
	s := &HistoryService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var errHistoryRepoNotSet = errors.New("history repository not set")

// RecordQueryRequest represents an answered query to add to a session's history
type RecordQueryRequest struct {
	SessionID    uuid.UUID
	Query        string
	Category     models.Category
	Jurisdiction models.Jurisdiction
	Response     models.AnalysisResponse
}

// RecordQuery appends an answered query to the session history
func (s *HistoryService) RecordQuery(ctx context.Context, req RecordQueryRequest) (*models.HistoryEntry, error) {
	if s.historyRepo == nil {
		return nil, errHistoryRepoNotSet
	}

	entry := &models.HistoryEntry{
		Query:        req.Query,
		Answer:       req.Response.Answer,
		Category:     req.Category,
		Jurisdiction: req.Jurisdiction,
		References:   req.Response.References,
	}
	if err := s.historyRepo.Append(ctx, req.SessionID, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// GetHistoryRequest represents a request to view a session's history
type GetHistoryRequest struct {
	SessionID  uuid.UUID
	Categories []models.Category // Empty means no filter
}

// GetHistoryResult holds the filtered entries and statistics over the whole session
type GetHistoryResult struct {
	Entries []models.HistoryEntry `json:"entries"`
	Stats   models.HistoryStats   `json:"stats"`
}

// GetHistory returns the session's entries, optionally filtered by category
func (s *HistoryService) GetHistory(ctx context.Context, req GetHistoryRequest) (*GetHistoryResult, error) {
	if s.historyRepo == nil {
		return nil, errHistoryRepoNotSet
	}

	entries, err := s.historyRepo.ListBySessionID(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	return &GetHistoryResult{
		Entries: FilterByCategory(entries, req.Categories),
		Stats:   ComputeStats(entries),
	}, nil
}

// ClearHistory removes every entry for the session
func (s *HistoryService) ClearHistory(ctx context.Context, sessionID uuid.UUID) error {
	if s.historyRepo == nil {
		return errHistoryRepoNotSet
	}
	return s.historyRepo.DeleteBySessionID(ctx, sessionID)
}

// FilterByCategory keeps entries in any of categories, preserving order
func FilterByCategory(entries []models.HistoryEntry, categories []models.Category) []models.HistoryEntry {
	if len(categories) == 0 {
		return entries
	}

	wanted := make(map[models.Category]bool, len(categories))
	for _, c := range categories {
		wanted[c] = true
	}

	filtered := make([]models.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if wanted[entry.Category] {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// ComputeStats counts entries and finds the most common category and jurisdiction.
// Ties go to the label that appeared first.
func ComputeStats(entries []models.HistoryEntry) models.HistoryStats {
	stats := models.HistoryStats{TotalQueries: len(entries)}
	if len(entries) == 0 {
		return stats
	}

	categories := make([]string, len(entries))
	jurisdictions := make([]string, len(entries))
	for i, entry := range entries {
		categories[i] = string(entry.Category)
		jurisdictions[i] = string(entry.Jurisdiction)
	}

	stats.TopCategory = models.Category(mode(categories))
	stats.TopJurisdiction = models.Jurisdiction(mode(jurisdictions))
	return stats
}

func mode(values []string) string {
	counts := make(map[string]int, len(values))
	var best string
	bestCount := 0
	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
