package typeregistry

import (
	"context"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/tag"
)

func newTestClient(t *testing.T) *ent.Client {
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

func seedDocumentWithTags(t *testing.T, client *ent.Client, docType string, tagNames ...string) {
	ctx := context.Background()
	docID := uuid.NewString()
	doc, err := client.Document.Create().
		SetID(docID).
		SetFilename("f.pdf").
		SetSourcePath("/inbox/" + docID).
		SetDocumentType(docType).
		Save(ctx)
	require.NoError(t, err)

	for _, name := range tagNames {
		// tag_normalized is unique, so a name seeded by an earlier call is reused.
		tg, err := client.Tag.Query().Where(tag.TagNormalized(name)).Only(ctx)
		if ent.IsNotFound(err) {
			tg, err = client.Tag.Create().
				SetID(uuid.NewString()).
				SetTagName(name).
				SetTagNormalized(name).
				SetCreatedBy(tag.CreatedByUser).
				Save(ctx)
		}
		require.NoError(t, err)

		_, err = client.DocumentTag.Create().
			SetID(uuid.NewString()).
			SetDocumentID(doc.ID).
			SetTagID(tg.ID).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestRegistryRefreshLoadsTypesAndTopCombinations(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	seedDocumentWithTags(t, client, "utility_bill", "electric", "monthly")
	seedDocumentWithTags(t, client, "utility_bill", "electric", "monthly")
	seedDocumentWithTags(t, client, "utility_bill", "gas")
	seedDocumentWithTags(t, client, "receipt")

	reg := NewRegistry(client, 2)
	require.NoError(t, reg.Refresh(ctx))

	assert.ElementsMatch(t, []string{"receipt", "utility_bill"}, reg.Types())

	combos := reg.TopTagCombinations("utility_bill")
	require.Len(t, combos, 2)
	assert.Equal(t, []string{"electric", "monthly"}, combos[0].Tags)
	assert.Equal(t, 2, combos[0].Count)
}

func TestRegistryExcludesSeriesPrefixedTags(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	seedDocumentWithTags(t, client, "utility_bill", "electric", "series:pge")

	reg := NewRegistry(client, 5)
	require.NoError(t, reg.Refresh(ctx))

	combos := reg.TopTagCombinations("utility_bill")
	require.Len(t, combos, 1)
	assert.Equal(t, []string{"electric"}, combos[0].Tags)
}
