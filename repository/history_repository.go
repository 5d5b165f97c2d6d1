package repository

import (
	"context"
	"sync"
	"time"

	"legal-advisor-backend/models"

	"github.com/google/uuid"
)

const (
	DefaultIdleTimeout = 2 * time.Hour
	DefaultMaxSessions = 10000
)

type session struct {
	entries    []models.HistoryEntry
	lastAccess time.Time
}

// HistoryRepository keeps each session's query history in memory.
// Entries are append-only while the session is alive. A session that has not
// been read or written for the idle timeout is dropped, and once the session
// cap is reached the least recently used session makes room for a new one.
type HistoryRepository struct {
	mu          sync.Mutex
	sessions    map[uuid.UUID]*session
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time
}

// HistoryRepositoryOption is a functional option for HistoryRepository
type HistoryRepositoryOption func(*HistoryRepository)

// WithIdleTimeout sets how long an untouched session is kept. Zero or less keeps sessions forever.
func WithIdleTimeout(d time.Duration) HistoryRepositoryOption {
	return func(r *HistoryRepository) {
		r.idleTimeout = d
	}
}

// WithMaxSessions caps the number of live sessions. Zero or less means no cap.
func WithMaxSessions(n int) HistoryRepositoryOption {
	return func(r *HistoryRepository) {
		r.maxSessions = n
	}
}

// NewHistoryRepository creates a new in-memory history repository
func NewHistoryRepository(opts ...HistoryRepositoryOption) *HistoryRepository {
	r := &HistoryRepository{
		sessions:    make(map[uuid.UUID]*session),
		idleTimeout: DefaultIdleTimeout,
		maxSessions: DefaultMaxSessions,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Append adds an entry to the end of a session's history, assigning its ID and timestamp if unset
func (r *HistoryRepository) Append(ctx context.Context, sessionID uuid.UUID, entry *models.HistoryEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := r.now()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = now
	}

	stored := *entry
	stored.References = copyReferences(entry.References)

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.liveSessionLocked(sessionID, now)
	if s == nil {
		r.makeRoomLocked(now)
		s = &session{}
		r.sessions[sessionID] = s
	}
	s.entries = append(s.entries, stored)
	s.lastAccess = now
	return nil
}

// ListBySessionID returns a copy of a session's history in insertion order
func (r *HistoryRepository) ListBySessionID(ctx context.Context, sessionID uuid.UUID) ([]models.HistoryEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.liveSessionLocked(sessionID, now)
	if s == nil {
		return []models.HistoryEntry{}, nil
	}
	s.lastAccess = now

	out := make([]models.HistoryEntry, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry
		out[i].References = copyReferences(entry.References)
	}
	return out, nil
}

// DeleteBySessionID removes a session's history
func (r *HistoryRepository) DeleteBySessionID(ctx context.Context, sessionID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// EvictIdle drops every session idle for longer than the idle timeout and
// returns how many were removed
func (r *HistoryRepository) EvictIdle() int {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.evictIdleLocked(now)
}

// SessionCount returns the number of sessions currently held
func (r *HistoryRepository) SessionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

func (r *HistoryRepository) expired(s *session, now time.Time) bool {
	return r.idleTimeout > 0 && now.Sub(s.lastAccess) > r.idleTimeout
}

// liveSessionLocked returns the session, dropping it first if it has gone idle
func (r *HistoryRepository) liveSessionLocked(sessionID uuid.UUID, now time.Time) *session {
	s, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	if r.expired(s, now) {
		delete(r.sessions, sessionID)
		return nil
	}
	return s
}

func (r *HistoryRepository) evictIdleLocked(now time.Time) int {
	evicted := 0
	for id, s := range r.sessions {
		if r.expired(s, now) {
			delete(r.sessions, id)
			evicted++
		}
	}
	return evicted
}

// makeRoomLocked frees a slot for a new session when the cap is reached
func (r *HistoryRepository) makeRoomLocked(now time.Time) {
	if r.maxSessions <= 0 || len(r.sessions) < r.maxSessions {
		return
	}
	if r.evictIdleLocked(now) > 0 && len(r.sessions) < r.maxSessions {
		return
	}

	for len(r.sessions) >= r.maxSessions {
		var oldestID uuid.UUID
		var oldest time.Time
		first := true
		for id, s := range r.sessions {
			if first || s.lastAccess.Before(oldest) {
				oldestID, oldest, first = id, s.lastAccess, false
			}
		}
		delete(r.sessions, oldestID)
	}
}

func copyReferences(refs []string) []string {
	out := make([]string, len(refs))
	copy(out, refs)
	return out
}
