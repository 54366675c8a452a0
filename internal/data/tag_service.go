package data

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/tag"
)

// TagService manages Tag rows and their attachment to documents.
type TagService struct {
	client *ent.Client
}

// NewTagService constructs a TagService.
func NewTagService(client *ent.Client) *TagService {
	return &TagService{client: client}
}

func normalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GetOrCreate returns the existing tag matching the normalized name, or
// creates one attributed to createdBy ("user", "llm", or "system").
func (s *TagService) GetOrCreate(ctx context.Context, name string, createdBy tag.CreatedBy, category *string) (*ent.Tag, error) {
	normalized := normalizeTag(name)
	if normalized == "" {
		return nil, NewValidationError("tag_name", "required")
	}

	existing, err := s.client.Tag.Query().Where(tag.TagNormalizedEQ(normalized)).Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up tag %q: %w", normalized, err)
	}

	create := s.client.Tag.Create().
		SetID(uuid.NewString()).
		SetTagName(name).
		SetTagNormalized(normalized).
		SetCreatedBy(createdBy)
	if category != nil {
		create = create.SetCategory(*category)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Lost the create race to a concurrent caller; fetch theirs.
			return s.client.Tag.Query().Where(tag.TagNormalizedEQ(normalized)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to create tag %q: %w", normalized, err)
	}
	return created, nil
}

// AttachToDocument links a tag to a document, no-op if already linked, and
// bumps the tag's usage counters.
func (s *TagService) AttachToDocument(ctx context.Context, documentID, tagID string) error {
	_, createErr := s.client.DocumentTag.Create().
		SetID(uuid.NewString()).
		SetDocumentID(documentID).
		SetTagID(tagID).
		Save(ctx)
	if createErr != nil {
		if ent.IsConstraintError(createErr) {
			return nil // already attached
		}
		return fmt.Errorf("failed to attach tag %s to document %s: %w", tagID, documentID, createErr)
	}

	now := time.Now()
	if err := s.client.Tag.UpdateOneID(tagID).
		AddUsageCount(1).
		SetLastUsed(now).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update tag usage for %s: %w", tagID, err)
	}
	return nil
}
