package data

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/documentseries"
)

// DocumentService manages Document lifecycle: registration, claiming for a
// pipeline step under FOR UPDATE SKIP LOCKED, and conditional transitions
// keyed on an expected predecessor status.
type DocumentService struct {
	client *ent.Client
}

// NewDocumentService constructs a DocumentService.
func NewDocumentService(client *ent.Client) *DocumentService {
	return &DocumentService{client: client}
}

// RegisterRequest describes a new document discovered by the inbox scanner.
type RegisterRequest struct {
	ID         string
	Filename   string
	SourcePath string
	UserID     *string
}

// Register creates a pending Document row. Returns ErrAlreadyExists if a
// document with the same id already exists — the inbox scanner treats this
// as a benign retry, since meta.json ids are scanner-supplied UUIDs and a
// repeated sweep of the same folder must not create a duplicate row.
func (s *DocumentService) Register(ctx context.Context, req RegisterRequest) (*ent.Document, error) {
	if req.Filename == "" {
		return nil, NewValidationError("filename", "required")
	}
	if req.SourcePath == "" {
		return nil, NewValidationError("source_path", "required")
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	create := s.client.Document.Create().
		SetID(id).
		SetFilename(req.Filename).
		SetSourcePath(req.SourcePath).
		SetStatus(document.StatusPending)
	if req.UserID != nil {
		create = create.SetUserID(*req.UserID)
	}

	doc, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to register document: %w", err)
	}
	return doc, nil
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*ent.Document, error) {
	doc, err := s.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document %s: %w", id, err)
	}
	return doc, nil
}

// ClaimNext atomically claims the oldest document in fromStatus and
// transitions it to inProgressStatus, using SELECT ... FOR UPDATE SKIP
// LOCKED so concurrent workers never race on the same row. Returns
// ErrNotFound when no document is available.
func (s *DocumentService) ClaimNext(ctx context.Context, fromStatus, inProgressStatus document.Status) (*ent.Document, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	doc, err := tx.Document.Query().
		Where(document.StatusEQ(fromStatus)).
		Order(ent.Asc(document.FieldUpdatedAt)).
		Limit(1).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query claimable document: %w", err)
	}

	doc, err = doc.Update().
		SetStatus(inProgressStatus).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim document %s: %w", doc.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return doc, nil
}

// ClaimStale finds documents stuck in an in-progress status past staleTimeout
// (the orchestrator's recovery sweep uses this to find crashed workers' work)
// and atomically resets them to resetStatus for re-pickup.
func (s *DocumentService) ClaimStale(ctx context.Context, inProgressStatus, resetStatus document.Status, staleTimeout time.Duration) ([]*ent.Document, error) {
	threshold := time.Now().Add(-staleTimeout)

	stale, err := s.client.Document.Query().
		Where(
			document.StatusEQ(inProgressStatus),
			document.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale documents: %w", err)
	}
	if len(stale) == 0 {
		return nil, nil
	}

	recovered := make([]*ent.Document, 0, len(stale))
	for _, doc := range stale {
		updated, err := s.client.Document.UpdateOneID(doc.ID).
			Where(document.StatusEQ(inProgressStatus)).
			SetStatus(resetStatus).
			AddRetryCount(1).
			Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				// Another instance already recovered it; not an error.
				continue
			}
			return nil, fmt.Errorf("failed to reset stale document %s: %w", doc.ID, err)
		}
		recovered = append(recovered, updated)
	}
	return recovered, nil
}

// ConditionalUpdate applies mutate only if the document is currently in
// fromStatus, returning ErrConcurrentModification otherwise. This is the
// building block every pipeline step uses to publish its result: the
// update predicate doubles as the optimistic-concurrency check.
func (s *DocumentService) ConditionalUpdate(ctx context.Context, id string, fromStatus document.Status, mutate func(*ent.DocumentUpdateOne) *ent.DocumentUpdateOne) (*ent.Document, error) {
	update := s.client.Document.UpdateOneID(id).Where(document.StatusEQ(fromStatus))
	update = mutate(update)

	doc, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("failed to update document %s: %w", id, err)
	}
	return doc, nil
}

// MarkFailed transitions a document to the terminal failed status with an
// error message, regardless of its current status (used by the retry-budget
// exhaustion path, which can fire from any in-progress status).
func (s *DocumentService) MarkFailed(ctx context.Context, id, errMsg string) (*ent.Document, error) {
	now := time.Now()
	doc, err := s.client.Document.UpdateOneID(id).
		SetStatus(document.StatusFailed).
		SetErrorMessage(errMsg).
		SetCompletedAt(now).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark document %s failed: %w", id, err)
	}
	return doc, nil
}

// ListNeedingRegeneration returns documents in a series whose series
// extraction predates the given prompt version (or never ran at all).
func (s *DocumentService) ListNeedingRegeneration(ctx context.Context, seriesID, activePromptID string) ([]*ent.Document, error) {
	docs, err := s.client.Document.Query().
		Where(
			document.HasDocumentSeriesWith(documentseries.SeriesIDEQ(seriesID)),
			document.Or(
				document.SeriesPromptIDIsNil(),
				document.SeriesPromptIDNEQ(activePromptID),
			),
		).
		Order(ent.Asc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents needing regeneration for series %s: %w", seriesID, err)
	}
	return docs, nil
}

// UpdateSeriesExtraction rewrites a document's series-scoped extraction
// without a status predicate — the regeneration worker runs over documents
// that are already terminal (completed), so the optimistic status guard the
// lifecycle steps use does not apply here.
func (s *DocumentService) UpdateSeriesExtraction(ctx context.Context, id string, structuredData map[string]interface{}, promptID string, method document.ExtractionMethod) (*ent.Document, error) {
	doc, err := s.client.Document.UpdateOneID(id).
		SetStructuredData(structuredData).
		SetSeriesPromptID(promptID).
		SetExtractionMethod(method).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update series extraction for document %s: %w", id, err)
	}
	return doc, nil
}

// Reprocess resets a terminal failed document to pending with a fresh
// retry budget — the manual escape hatch, never invoked by the
// orchestrator itself. Returns ErrConcurrentModification if the document
// is not currently failed.
func (s *DocumentService) Reprocess(ctx context.Context, id string) (*ent.Document, error) {
	doc, err := s.client.Document.UpdateOneID(id).
		Where(document.StatusEQ(document.StatusFailed)).
		SetStatus(document.StatusPending).
		SetRetryCount(0).
		ClearErrorMessage().
		ClearCompletedAt().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrConcurrentModification
		}
		return nil, fmt.Errorf("failed to reprocess document %s: %w", id, err)
	}
	return doc, nil
}

// ListByStatus returns documents in a given status, newest first, capped at limit.
func (s *DocumentService) ListByStatus(ctx context.Context, status document.Status, limit int) ([]*ent.Document, error) {
	docs, err := s.client.Document.Query().
		Where(document.StatusEQ(status)).
		Order(ent.Desc(document.FieldUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents by status: %w", err)
	}
	return docs, nil
}
