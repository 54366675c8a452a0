package locks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func newTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("alfrd_test"),
		postgres.WithUsername("alfrd"),
		postgres.WithPassword("alfrd"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(pgContainer)
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.PingContext(ctx))
	return db
}

func TestManagerAcquireReleaseRoundTrip(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db, 2*time.Second, nil)
	ctx := context.Background()

	held, err := mgr.Acquire(ctx, SeriesPromptKey("series-1"))
	require.NoError(t, err)
	require.NoError(t, held.Release(ctx))
}

func TestManagerAcquireBlocksConcurrentHolder(t *testing.T) {
	db := newTestDB(t)
	mgr := NewManager(db, 300*time.Millisecond, nil)
	ctx := context.Background()

	key := PromptFamilyKey("classifier", "utility_bill")
	first, err := mgr.Acquire(ctx, key)
	require.NoError(t, err)

	_, err = mgr.Acquire(ctx, key)
	assert.Error(t, err, "second acquire should time out while the first holder is live")

	require.NoError(t, first.Release(ctx))

	second, err := mgr.Acquire(ctx, key)
	require.NoError(t, err)
	require.NoError(t, second.Release(ctx))
}

func TestManagerPublishesLockEvents(t *testing.T) {
	db := newTestDB(t)
	var events []string
	publish := func(_ context.Context, eventType string, _ map[string]interface{}) {
		events = append(events, eventType)
	}
	mgr := NewManager(db, time.Second, publish)
	ctx := context.Background()

	held, err := mgr.Acquire(ctx, SeriesPromptKey("series-2"))
	require.NoError(t, err)
	require.NoError(t, held.Release(ctx))

	assert.Equal(t, []string{"lock_requested", "lock_acquired", "lock_released"}, events)
}
