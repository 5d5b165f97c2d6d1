package service

import (
	"context"
	"testing"

	"legal-advisor-backend/models"
	"legal-advisor-backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(category models.Category, jurisdiction models.Jurisdiction) models.HistoryEntry {
	return models.HistoryEntry{Category: category, Jurisdiction: jurisdiction}
}

func TestComputeStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		stats := ComputeStats(nil)
		assert.Equal(t, models.HistoryStats{}, stats)
	})

	t.Run("mode", func(t *testing.T) {
		stats := ComputeStats([]models.HistoryEntry{
			entry(models.CategoryTax, models.JurisdictionVictoria),
			entry(models.CategoryCriminal, models.JurisdictionFederal),
			entry(models.CategoryCriminal, models.JurisdictionFederal),
		})
		assert.Equal(t, 3, stats.TotalQueries)
		assert.Equal(t, models.CategoryCriminal, stats.TopCategory)
		assert.Equal(t, models.JurisdictionFederal, stats.TopJurisdiction)
	})

	t.Run("ties go to first seen", func(t *testing.T) {
		stats := ComputeStats([]models.HistoryEntry{
			entry(models.CategoryTax, models.JurisdictionTasmania),
			entry(models.CategoryDivorce, models.JurisdictionACT),
		})
		assert.Equal(t, models.CategoryTax, stats.TopCategory)
		assert.Equal(t, models.JurisdictionTasmania, stats.TopJurisdiction)
	})
}

func TestFilterByCategory(t *testing.T) {
	entries := []models.HistoryEntry{
		{Query: "a", Category: models.CategoryTax},
		{Query: "b", Category: models.CategoryCriminal},
		{Query: "c", Category: models.CategoryTax},
	}

	assert.Equal(t, entries, FilterByCategory(entries, nil))

	filtered := FilterByCategory(entries, []models.Category{models.CategoryTax})
	require.Len(t, filtered, 2)
	assert.Equal(t, "a", filtered[0].Query)
	assert.Equal(t, "c", filtered[1].Query)

	assert.Empty(t, FilterByCategory(entries, []models.Category{models.CategoryHealthcare}))
}

func TestHistoryService(t *testing.T) {
	ctx := context.Background()
	svc := NewHistoryService(WithHistoryRepository(repository.NewHistoryRepository()))
	session := uuid.New()

	recorded, err := svc.RecordQuery(ctx, RecordQueryRequest{
		SessionID:    session,
		Query:        "Do I need a will?",
		Category:     models.CategoryProperty,
		Jurisdiction: models.JurisdictionWA,
		Response:     models.AnalysisResponse{Answer: "Yes.", References: []string{"[2020] WASC 1"}},
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, recorded.ID)
	assert.False(t, recorded.Timestamp.IsZero())

	_, err = svc.RecordQuery(ctx, RecordQueryRequest{
		SessionID:    session,
		Query:        "Is a caveat enough?",
		Category:     models.CategoryProperty,
		Jurisdiction: models.JurisdictionWA,
		Response:     models.AnalysisResponse{Answer: "Maybe."},
	})
	require.NoError(t, err)

	result, err := svc.GetHistory(ctx, GetHistoryRequest{SessionID: session})
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "Do I need a will?", result.Entries[0].Query)
	assert.Equal(t, []string{"[2020] WASC 1"}, result.Entries[0].References)
	assert.Equal(t, 2, result.Stats.TotalQueries)

	filtered, err := svc.GetHistory(ctx, GetHistoryRequest{SessionID: session, Categories: []models.Category{models.CategoryTax}})
	require.NoError(t, err)
	assert.Empty(t, filtered.Entries)
	assert.Equal(t, 2, filtered.Stats.TotalQueries, "stats cover the whole session")

	require.NoError(t, svc.ClearHistory(ctx, session))
	result, err = svc.GetHistory(ctx, GetHistoryRequest{SessionID: session})
	require.NoError(t, err)
	assert.Empty(t, result.Entries)
}

func TestHistoryServiceWithoutRepository(t *testing.T) {
	svc := NewHistoryService()
	_, err := svc.GetHistory(context.Background(), GetHistoryRequest{SessionID: uuid.New()})
	assert.Error(t, err)
}
