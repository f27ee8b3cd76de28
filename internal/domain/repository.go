package domain

import (
	"context"
	"time"
)

// SessionRepository holds the live editing sessions of this process.
// Sessions are in-flight editor state, not durable data: implementations
// keep them in memory and evict idle ones. Because a Session is not
// safe for concurrent use, all access after Save goes through Update,
// which serializes callers per session.
type SessionRepository interface {
	// Save stores a session under its id.
	Save(ctx context.Context, session *Session) error

	// Update runs fn with exclusive access to the session and marks the
	// session active. It returns a not-found error for unknown ids and
	// passes through any error fn returns.
	Update(ctx context.Context, id string, fn func(*Session) error) error

	// Delete removes the session. A missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Sweep evicts sessions idle for longer than maxIdle and returns
	// the evicted ids.
	Sweep(ctx context.Context, maxIdle time.Duration) []string

	// Count returns the number of live sessions.
	Count(ctx context.Context) int
}
