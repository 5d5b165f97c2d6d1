package models

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry represents one answered query in a session's history
type HistoryEntry struct {
	ID           uuid.UUID    `json:"id"`
	Query        string       `json:"query"`
	Answer       string       `json:"answer"`
	Category     Category     `json:"category"`
	Jurisdiction Jurisdiction `json:"jurisdiction"`
	Timestamp    time.Time    `json:"timestamp"`
	References   []string     `json:"references"`
}

// TimestampISO returns the entry timestamp in ISO-8601 form
func (e HistoryEntry) TimestampISO() string {
	return e.Timestamp.Format(time.RFC3339)
}

// HistoryStats summarises a session's history
type HistoryStats struct {
	TotalQueries    int          `json:"total_queries"`
	TopCategory     Category     `json:"top_category,omitempty"`
	TopJurisdiction Jurisdiction `json:"top_jurisdiction,omitempty"`
}
