package data

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirmick/alfrd/ent/file"
	"github.com/sirmick/alfrd/ent/tag"
)

func TestTagSignatureSortsAndLowercases(t *testing.T) {
	sorted, sig := TagSignature([]string{"Utilities", "Bill", "bill"})
	assert.Equal(t, []string{"bill", "bill", "utilities"}, sorted)
	assert.Equal(t, "bill:bill:utilities", sig)
}

func TestFileServiceGetOrCreateBySignatureDedupes(t *testing.T) {
	client := newTestClient(t)
	svc := NewFileService(client)
	ctx := context.Background()

	f1, err := svc.GetOrCreateBySignature(ctx, []string{"bill", "utilities"}, nil)
	require.NoError(t, err)
	f2, err := svc.GetOrCreateBySignature(ctx, []string{"Utilities", "Bill"}, nil)
	require.NoError(t, err)
	assert.Equal(t, f1.ID, f2.ID)
	assert.Equal(t, "bill:utilities", f1.TagSignature)
}

func TestFileServiceClaimNextAndGenerate(t *testing.T) {
	client := newTestClient(t)
	fileSvc := NewFileService(client)
	docSvc := NewDocumentService(client)
	ctx := context.Background()

	f, err := fileSvc.GetOrCreateBySignature(ctx, []string{"bill"}, nil)
	require.NoError(t, err)

	doc, err := docSvc.Register(ctx, RegisterRequest{Filename: "bill.pdf", SourcePath: "/inbox/bill.pdf"})
	require.NoError(t, err)
	require.NoError(t, fileSvc.AttachDocuments(ctx, f.ID, []string{doc.ID}))

	claimed, err := fileSvc.ClaimNext(ctx, file.StatusPending, file.StatusGenerating)
	require.NoError(t, err)
	assert.Equal(t, f.ID, claimed.ID)
	assert.Equal(t, file.StatusGenerating, claimed.Status)

	generated, err := fileSvc.MarkGenerated(ctx, f.ID, GeneratedSummary{
		SummaryText:     "aggregated summary",
		SummaryMetadata: map[string]interface{}{"count": 1},
		DocumentCount:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, file.StatusGenerated, generated.Status)
	assert.Equal(t, "aggregated summary", *generated.SummaryText)
}

func TestFileServiceDocumentsMatchingTags(t *testing.T) {
	client := newTestClient(t)
	fileSvc := NewFileService(client)
	tagSvc := NewTagService(client)
	docSvc := NewDocumentService(client)
	ctx := context.Background()

	doc, err := docSvc.Register(ctx, RegisterRequest{Filename: "bill.pdf", SourcePath: "/inbox/bill.pdf"})
	require.NoError(t, err)
	tg, err := tagSvc.GetOrCreate(ctx, "bill", tag.CreatedByUser, nil)
	require.NoError(t, err)
	require.NoError(t, tagSvc.AttachToDocument(ctx, doc.ID, tg.ID))

	matched, err := fileSvc.DocumentsMatchingTags(ctx, []string{"bill"})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, doc.ID, matched[0].ID)
}
