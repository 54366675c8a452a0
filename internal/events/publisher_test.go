package events

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/internal/masking"
)

func newTestEntClient(t *testing.T) *ent.Client {
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
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(pgContainer) })

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	client := ent.NewClient(ent.Driver(drv))
	require.NoError(t, client.Schema.Create(ctx))
	t.Cleanup(func() { client.Close() })

	return client
}

func TestPublisherDocumentEventMasksDetails(t *testing.T) {
	client := newTestEntClient(t)
	ctx := context.Background()

	doc, err := client.Document.Create().SetID("doc-1").SetFilename("a.pdf").SetSourcePath("/inbox/doc-1").Save(ctx)
	require.NoError(t, err)

	pub := NewPublisher(client, masking.NewService(true, "default"))
	err = pub.Document(ctx, doc.ID, CategoryLifecycle, EventOCRCompleted, map[string]interface{}{
		"contact": "jane@example.com",
	})
	require.NoError(t, err)

	ev, err := client.Event.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, EventOCRCompleted, ev.EventType)
	assert.Equal(t, "[REDACTED_EMAIL]", ev.Details["contact"])
}

func TestPublisherSeriesAndSystemEvents(t *testing.T) {
	client := newTestEntClient(t)
	ctx := context.Background()

	pub := NewPublisher(client, nil)
	require.NoError(t, pub.Series(ctx, "series-1", CategoryPrompt, EventPromptEvolved, nil))
	require.NoError(t, pub.System(ctx, CategoryLock, EventLockTimeout, map[string]interface{}{"lock_key": "x"}))

	count, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
