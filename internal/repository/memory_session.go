package repository

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"omr-studio/internal/domain"
)

// sessionEntry pairs a session with its own lock and last-access time.
// The per-entry mutex serializes callers of one session without
// blocking work on the others.
type sessionEntry struct {
	mu         sync.Mutex
	session    *domain.Session
	lastActive atomic.Int64 // unix nanoseconds
}

func (e *sessionEntry) touch() {
	e.lastActive.Store(time.Now().UnixNano())
}

// MemorySessionRepository keeps live editing sessions in process
// memory. Sessions are working state, not durable data; a periodic
// Sweep evicts the ones nobody has touched for a while.
type MemorySessionRepository struct {
	mu      sync.RWMutex
	entries map[string]*sessionEntry
}

// NewMemorySessionRepository creates an empty repository.
func NewMemorySessionRepository() domain.SessionRepository {
	return &MemorySessionRepository{
		entries: make(map[string]*sessionEntry),
	}
}

// Save stores a session under its id, replacing any previous session
// with the same id.
func (r *MemorySessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID() == "" {
		return domain.NewInvalidInputError("session must have an id")
	}
	entry := &sessionEntry{session: session}
	entry.touch()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[session.ID()] = entry
	return nil
}

// Update runs fn with exclusive access to the session and refreshes
// its last-active time. An entry swept between lookup and lock still
// runs fn; the session is simply gone on the next call.
func (r *MemorySessionRepository) Update(ctx context.Context, id string, fn func(*domain.Session) error) error {
	r.mu.RLock()
	entry, ok := r.entries[id]
	r.mu.RUnlock()
	if !ok {
		return domain.NewSessionNotFoundError(id)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()
	return fn(entry.session)
}

// Delete removes the session. A missing id is not an error.
func (r *MemorySessionRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

// Sweep evicts sessions idle for longer than maxIdle and returns the
// evicted ids in sorted order.
func (r *MemorySessionRepository) Sweep(ctx context.Context, maxIdle time.Duration) []string {
	now := time.Now().UnixNano()

	r.mu.Lock()
	defer r.mu.Unlock()
	var evicted []string
	for id, entry := range r.entries {
		if now-entry.lastActive.Load() > maxIdle.Nanoseconds() {
			delete(r.entries, id)
			evicted = append(evicted, id)
		}
	}
	sort.Strings(evicted)
	return evicted
}

// Count returns the number of live sessions.
func (r *MemorySessionRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
