package database

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
)

// newTestClient starts a disposable Postgres container, creates the ent
// schema directly with Schema.Create (the embedded golang-migrate
// migrations are not run here), and creates the GIN indexes.
func newTestClient(t *testing.T) *Client {
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
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	drv, err := sql.Open(dialect.Postgres, connStr)
	require.NoError(t, err)

	db := drv.DB()
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	entClient := ent.NewClient(ent.Driver(drv))
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateGINIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestClientConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearchFindsSeededDocument(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Document.Create().
		SetID("doc-1").
		SetFilename("statement.pdf").
		SetSourcePath("/inbox/doc-1").
		SetExtractedText("Pacific Gas and Electric monthly statement for March").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT document_id FROM documents WHERE to_tsvector('english', extracted_text) @@ plainto_tsquery('english', 'electric statement')`)
	require.NoError(t, err)
	defer rows.Close()

	var found bool
	for rows.Next() {
		found = true
	}
	assert.True(t, found, "expected full-text search to find the seeded document")
}
