// Package locks provides Postgres advisory locks for cross-process
// coordination that a row-level SELECT ... FOR UPDATE can't express: a
// series' first prompt creation and a document type's prompt-evolution
// pass must each run under mutual exclusion across every orchestrator
// instance, not just within one transaction.
package locks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ErrTimeout is returned by Acquire when waitTimeout elapses before the
// lock is obtained. Callers treat it as a soft deferral, not a failure.
var ErrTimeout = errors.New("advisory lock wait timed out")

// Manager acquires and releases session-scoped Postgres advisory locks
// keyed by a stable string, hashed to the int64 pg_advisory_lock expects.
type Manager struct {
	db          *sql.DB
	waitTimeout time.Duration
	publish     func(ctx context.Context, eventType string, details map[string]interface{})
}

// NewManager constructs a Manager. publish may be nil, in which case lock
// events are only logged, not persisted.
func NewManager(db *sql.DB, waitTimeout time.Duration, publish func(ctx context.Context, eventType string, details map[string]interface{})) *Manager {
	return &Manager{db: db, waitTimeout: waitTimeout, publish: publish}
}

// SeriesPromptKey returns the lock key guarding first-prompt creation for a series.
func SeriesPromptKey(seriesID string) string {
	return fmt.Sprintf("series_prompt:%s", seriesID)
}

// PromptFamilyKey returns the lock key guarding evolution of a
// prompt_type+document_type family.
func PromptFamilyKey(promptType, documentType string) string {
	return fmt.Sprintf("prompt_family:%s:%s", promptType, documentType)
}

// SeriesCreateKey returns the lock key serializing read-or-create for a
// normalized (entity, series_type, user) triple, so two documents matching
// the same new series cannot both create a row.
func SeriesCreateKey(entityNorm, typeNorm, userID string) string {
	return fmt.Sprintf("series_create:%s:%s:%s", entityNorm, typeNorm, userID)
}

func hashKey(key string) int64 {
	return int64(xxhash.Sum64String(key))
}

// Held represents an acquired advisory lock, pinned to the connection it
// was taken on. Callers must call Release exactly once, typically via defer.
type Held struct {
	mgr  *Manager
	key  string
	id   int64
	conn *sql.Conn
}

// Acquire blocks until the named lock is obtained or waitTimeout elapses,
// whichever comes first, using repeated pg_try_advisory_lock polls (a
// session-level advisory lock must be taken and released on the SAME
// connection, so we pin one from the pool for the lock's lifetime).
func (m *Manager) Acquire(ctx context.Context, key string) (*Held, error) {
	log := slog.With("lock_key", key)
	m.event(ctx, "lock_requested", key, nil)

	conn, err := m.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reserve connection for advisory lock: %w", err)
	}

	id := hashKey(key)
	deadline := time.Now().Add(m.waitTimeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		var acquired bool
		if err := conn.QueryRowContext(ctx, `SELECT pg_try_advisory_lock($1)`, id).Scan(&acquired); err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("pg_try_advisory_lock failed: %w", err)
		}
		if acquired {
			log.Debug("advisory lock acquired")
			m.event(ctx, "lock_acquired", key, nil)
			return &Held{mgr: m, key: key, id: id, conn: conn}, nil
		}

		if time.Now().After(deadline) {
			_ = conn.Close()
			log.Warn("advisory lock wait timed out")
			m.event(ctx, "lock_timeout", key, map[string]interface{}{"wait": m.waitTimeout.String()})
			return nil, fmt.Errorf("%w: waited %s for %q", ErrTimeout, m.waitTimeout, key)
		}

		select {
		case <-ctx.Done():
			_ = conn.Close()
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// Release unlocks the advisory lock and returns the pinned connection to the pool.
func (h *Held) Release(ctx context.Context) error {
	_, err := h.conn.ExecContext(ctx, `SELECT pg_advisory_unlock($1)`, h.id)
	closeErr := h.conn.Close()
	h.mgr.event(ctx, "lock_released", h.key, nil)
	if err != nil {
		return fmt.Errorf("failed to release advisory lock: %w", err)
	}
	return closeErr
}

func (m *Manager) event(ctx context.Context, eventType, key string, extra map[string]interface{}) {
	if m.publish == nil {
		return
	}
	details := map[string]interface{}{"lock_key": key}
	for k, v := range extra {
		details[k] = v
	}
	m.publish(ctx, eventType, details)
}
