package data

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
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/prompt"
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

func TestDocumentServiceRegisterAndClaim(t *testing.T) {
	client := newTestClient(t)
	svc := NewDocumentService(client)
	ctx := context.Background()

	doc, err := svc.Register(ctx, RegisterRequest{Filename: "statement.pdf", SourcePath: "/inbox/statement.pdf"})
	require.NoError(t, err)
	assert.Equal(t, document.StatusPending, doc.Status)

	claimed, err := svc.ClaimNext(ctx, document.StatusPending, document.StatusOcrInProgress)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, claimed.ID)
	assert.Equal(t, document.StatusOcrInProgress, claimed.Status)

	_, err = svc.ClaimNext(ctx, document.StatusPending, document.StatusOcrInProgress)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentServiceConditionalUpdateRejectsStaleStatus(t *testing.T) {
	client := newTestClient(t)
	svc := NewDocumentService(client)
	ctx := context.Background()

	doc, err := svc.Register(ctx, RegisterRequest{Filename: "bill.pdf", SourcePath: "/inbox/bill.pdf"})
	require.NoError(t, err)

	_, err = svc.ConditionalUpdate(ctx, doc.ID, document.StatusOcrCompleted, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.SetStatus(document.StatusClassified)
	})
	assert.ErrorIs(t, err, ErrConcurrentModification)

	updated, err := svc.ConditionalUpdate(ctx, doc.ID, document.StatusPending, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.SetStatus(document.StatusOcrInProgress)
	})
	require.NoError(t, err)
	assert.Equal(t, document.StatusOcrInProgress, updated.Status)
}

func TestDocumentServiceClaimStaleResetsTimedOutWork(t *testing.T) {
	client := newTestClient(t)
	svc := NewDocumentService(client)
	ctx := context.Background()

	doc, err := svc.Register(ctx, RegisterRequest{Filename: "old.pdf", SourcePath: "/inbox/old.pdf"})
	require.NoError(t, err)
	_, err = svc.ClaimNext(ctx, document.StatusPending, document.StatusOcrInProgress)
	require.NoError(t, err)

	// Force updated_at into the past to simulate a stalled worker.
	require.NoError(t, client.Document.UpdateOneID(doc.ID).
		SetUpdatedAt(time.Now().Add(-time.Hour)).
		Exec(ctx))

	recovered, err := svc.ClaimStale(ctx, document.StatusOcrInProgress, document.StatusPending, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, recovered, 1)
	assert.Equal(t, document.StatusPending, recovered[0].Status)
	assert.Equal(t, 1, recovered[0].RetryCount)
}

func TestTagServiceGetOrCreateDedupesByNormalizedName(t *testing.T) {
	client := newTestClient(t)
	svc := NewTagService(client)
	ctx := context.Background()

	t1, err := svc.GetOrCreate(ctx, "Utility Bill", tag.CreatedByLlm, nil)
	require.NoError(t, err)
	t2, err := svc.GetOrCreate(ctx, "utility bill", tag.CreatedByUser, nil)
	require.NoError(t, err)

	assert.Equal(t, t1.ID, t2.ID)
}

func TestSeriesServiceGetOrCreateAndActivePromptOnce(t *testing.T) {
	client := newTestClient(t)
	svc := NewSeriesService(client)
	ctx := context.Background()

	s1, err := svc.GetOrCreate(ctx, "PG&E Bills", "Pacific Gas & Electric", "monthly_utility_bill", nil)
	require.NoError(t, err)
	s2, err := svc.GetOrCreate(ctx, "ignored title", "pacific gas & electric", "monthly_utility_bill", nil)
	require.NoError(t, err)
	assert.Equal(t, s1.ID, s2.ID)

	set, err := svc.SetActivePromptIfUnset(ctx, s1.ID, "prompt-1")
	require.NoError(t, err)
	assert.True(t, set)

	setAgain, err := svc.SetActivePromptIfUnset(ctx, s1.ID, "prompt-2")
	require.NoError(t, err)
	assert.False(t, setAgain, "active prompt must only be set once")
}

func TestPromptServiceEvolveArchivesAndActivatesNextVersion(t *testing.T) {
	client := newTestClient(t)
	svc := NewPromptService(client)
	ctx := context.Background()

	docType := "utility_bill"
	current, err := svc.CreateInitial(ctx, CreatePromptParams{
		PromptType:   prompt.PromptTypeClassifier,
		DocumentType: &docType,
		Text:         "extract the type",
		CanEvolve:    true,
		ScoreCeiling: 0.9,
	})
	require.NoError(t, err)

	next, err := svc.Evolve(ctx, current, "extract the type, more carefully")
	require.NoError(t, err)
	assert.Equal(t, 2, next.Version)
	assert.True(t, next.IsActive)
	assert.Equal(t, current.ID, *next.ParentPromptID)

	archived, err := client.Prompt.Get(ctx, current.ID)
	require.NoError(t, err)
	assert.False(t, archived.IsActive)
	assert.NotNil(t, archived.ArchivedAt)
}
