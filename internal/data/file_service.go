package data

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/documenttag"
	"github.com/sirmick/alfrd/ent/file"
	"github.com/sirmick/alfrd/ent/tag"
)

// FileService manages File rows — tag-signature-defined aggregations
// across documents, recomputed whenever their membership changes.
type FileService struct {
	client *ent.Client
}

// NewFileService constructs a FileService.
func NewFileService(client *ent.Client) *FileService {
	return &FileService{client: client}
}

// TagSignature lowercases, sorts, and ':'-joins tags into the canonical
// signature a File's tag_signature must equal exactly.
func TagSignature(tags []string) (sorted []string, signature string) {
	sorted = make([]string, len(tags))
	for i, t := range tags {
		sorted[i] = strings.ToLower(strings.TrimSpace(t))
	}
	sort.Strings(sorted)
	return sorted, strings.Join(sorted, ":")
}

// GetOrCreateBySignature returns the File for this tag combination,
// creating a pending one (scoped to userID) if none exists yet.
func (s *FileService) GetOrCreateBySignature(ctx context.Context, tags []string, userID *string) (*ent.File, error) {
	sortedTags, signature := TagSignature(tags)
	if signature == "" {
		return nil, NewValidationError("tags", "at least one tag is required")
	}

	query := s.client.File.Query().Where(file.TagSignatureEQ(signature))
	if userID != nil {
		query = query.Where(file.UserIDEQ(*userID))
	} else {
		query = query.Where(file.UserIDIsNil())
	}

	existing, err := query.Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up file by signature %q: %w", signature, err)
	}

	create := s.client.File.Create().
		SetID(uuid.NewString()).
		SetTags(sortedTags).
		SetTagSignature(signature).
		SetStatus(file.StatusPending)
	if userID != nil {
		create = create.SetUserID(*userID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return query.Only(ctx)
		}
		return nil, fmt.Errorf("failed to create file for signature %q: %w", signature, err)
	}
	return created, nil
}

// MarkOutdated flags a file for regeneration, e.g. because a document
// matching its tags was just added or re-tagged.
func (s *FileService) MarkOutdated(ctx context.Context, id string) error {
	err := s.client.File.UpdateOneID(id).
		Where(file.StatusNEQ(file.StatusGenerating), file.StatusNEQ(file.StatusRegenerating)).
		SetStatus(file.StatusOutdated).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to mark file %s outdated: %w", id, err)
	}
	return nil
}

// ClaimNext atomically claims one file in fromStatus (pending or
// outdated) and moves it to generating/regenerating, mirroring
// DocumentService.ClaimNext's FOR UPDATE SKIP LOCKED idiom.
func (s *FileService) ClaimNext(ctx context.Context, fromStatus, inProgressStatus file.Status) (*ent.File, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	candidate, err := tx.File.Query().
		Where(file.StatusEQ(fromStatus)).
		Order(ent.Asc(file.FieldUpdatedAt)).
		ForUpdate().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query claimable file: %w", err)
	}

	claimed, err := tx.File.UpdateOneID(candidate.ID).
		SetStatus(inProgressStatus).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim file %s: %w", candidate.ID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit file claim: %w", err)
	}
	return claimed, nil
}

// AttachDocuments links documentIDs to a file, ignoring ones already linked.
func (s *FileService) AttachDocuments(ctx context.Context, fileID string, documentIDs []string) error {
	for _, docID := range documentIDs {
		_, err := s.client.FileDocument.Create().
			SetID(uuid.NewString()).
			SetFileID(fileID).
			SetDocumentID(docID).
			Save(ctx)
		if err != nil && !ent.IsConstraintError(err) {
			return fmt.Errorf("failed to attach document %s to file %s: %w", docID, fileID, err)
		}
	}
	return nil
}

// GeneratedSummary is the result of one file-summary run.
type GeneratedSummary struct {
	SummaryText       string
	SummaryMetadata   map[string]interface{}
	DocumentCount     int
	FirstDocumentDate *time.Time
	LastDocumentDate  *time.Time
	PromptVersion     *string
}

// MarkGenerated writes the aggregated summary and transitions the file to generated.
func (s *FileService) MarkGenerated(ctx context.Context, id string, summary GeneratedSummary) (*ent.File, error) {
	now := time.Now()
	update := s.client.File.UpdateOneID(id).
		SetStatus(file.StatusGenerated).
		SetSummaryText(summary.SummaryText).
		SetSummaryMetadata(summary.SummaryMetadata).
		SetDocumentCount(summary.DocumentCount).
		SetGeneratedAt(now)
	if summary.FirstDocumentDate != nil {
		update = update.SetFirstDocumentDate(*summary.FirstDocumentDate)
	}
	if summary.LastDocumentDate != nil {
		update = update.SetLastDocumentDate(*summary.LastDocumentDate)
	}
	if summary.PromptVersion != nil {
		update = update.SetPromptVersion(*summary.PromptVersion)
	}

	f, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark file %s generated: %w", id, err)
	}
	return f, nil
}

// MarkFailed transitions a file to failed with an error message.
func (s *FileService) MarkFailed(ctx context.Context, id, errMsg string) (*ent.File, error) {
	f, err := s.client.File.UpdateOneID(id).
		SetStatus(file.StatusFailed).
		SetErrorMessage(errMsg).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark file %s failed: %w", id, err)
	}
	return f, nil
}

// ResetClaim restores a single claimed file to a claimable status, used
// when a worker must give its claim back (transient error, shutdown).
func (s *FileService) ResetClaim(ctx context.Context, id string, fromStatus, toStatus file.Status) error {
	err := s.client.File.UpdateOneID(id).
		Where(file.StatusEQ(fromStatus)).
		SetStatus(toStatus).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrConcurrentModification
		}
		return fmt.Errorf("failed to reset claim on file %s: %w", id, err)
	}
	return nil
}

// ResetStale finds files stuck in an in-progress status past staleTimeout
// and resets them for re-pickup, the file-side analog of
// DocumentService.ClaimStale.
func (s *FileService) ResetStale(ctx context.Context, inProgressStatus, resetStatus file.Status, staleTimeout time.Duration) ([]*ent.File, error) {
	threshold := time.Now().Add(-staleTimeout)

	stale, err := s.client.File.Query().
		Where(
			file.StatusEQ(inProgressStatus),
			file.UpdatedAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale files: %w", err)
	}

	recovered := make([]*ent.File, 0, len(stale))
	for _, f := range stale {
		updated, err := s.client.File.UpdateOneID(f.ID).
			Where(file.StatusEQ(inProgressStatus)).
			SetStatus(resetStatus).
			Save(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("failed to reset stale file %s: %w", f.ID, err)
		}
		recovered = append(recovered, updated)
	}
	return recovered, nil
}

// Get retrieves a file by ID.
func (s *FileService) Get(ctx context.Context, id string) (*ent.File, error) {
	f, err := s.client.File.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get file %s: %w", id, err)
	}
	return f, nil
}

// DocumentsMatchingTags returns every document carrying at least one of
// tags, newest first — the membership rule for file aggregation is tag
// intersection, not explicit FileDocument rows.
func (s *FileService) DocumentsMatchingTags(ctx context.Context, tags []string) ([]*ent.Document, error) {
	docs, err := s.client.Document.Query().
		Where(document.HasDocumentTagsWith(documenttag.HasTagWith(tag.TagNormalizedIn(tags...)))).
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents matching tags %v: %w", tags, err)
	}
	return docs, nil
}
