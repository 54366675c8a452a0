package data

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/documentseries"
	"github.com/sirmick/alfrd/ent/series"
)

// SeriesService manages Series rows: lookup/creation keyed on
// (entity, series_type, user_id), document membership, and the
// active-prompt and regeneration-pending flags the pipeline coordinates
// through.
type SeriesService struct {
	client *ent.Client
}

// NewSeriesService constructs a SeriesService.
func NewSeriesService(client *ent.Client) *SeriesService {
	return &SeriesService{client: client}
}

func normalizeSeriesKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// GetOrCreate returns the series matching (entity, seriesType, userID),
// creating one with title if it doesn't exist yet.
func (s *SeriesService) GetOrCreate(ctx context.Context, title, entity, seriesType string, userID *string) (*ent.Series, error) {
	entityNorm := normalizeSeriesKey(entity)
	typeNorm := normalizeSeriesKey(seriesType)
	if entityNorm == "" || typeNorm == "" {
		return nil, NewValidationError("entity/series_type", "both are required")
	}

	query := s.client.Series.Query().Where(
		series.EntityNormalizedEQ(entityNorm),
		series.SeriesTypeNormalizedEQ(typeNorm),
	)
	if userID != nil {
		query = query.Where(series.UserIDEQ(*userID))
	} else {
		query = query.Where(series.UserIDIsNil())
	}

	existing, err := query.Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up series: %w", err)
	}

	create := s.client.Series.Create().
		SetID(uuid.NewString()).
		SetTitle(title).
		SetEntity(entity).
		SetEntityNormalized(entityNorm).
		SetSeriesType(seriesType).
		SetSeriesTypeNormalized(typeNorm)
	if userID != nil {
		create = create.SetUserID(*userID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return query.Only(ctx)
		}
		return nil, fmt.Errorf("failed to create series: %w", err)
	}
	return created, nil
}

// AddDocument links a document to a series and increments document_count.
func (s *SeriesService) AddDocument(ctx context.Context, seriesID, documentID string) error {
	_, err := s.client.DocumentSeries.Create().
		SetID(uuid.NewString()).
		SetSeriesID(seriesID).
		SetDocumentID(documentID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil
		}
		return fmt.Errorf("failed to add document %s to series %s: %w", documentID, seriesID, err)
	}

	if err := s.client.Series.UpdateOneID(seriesID).AddDocumentCount(1).Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment document_count for series %s: %w", seriesID, err)
	}
	return nil
}

// SetDetectionDetail records the frequency and metadata the series
// detector reported. Advisory only; later detections may refine it.
func (s *SeriesService) SetDetectionDetail(ctx context.Context, seriesID string, frequency *string, metadata map[string]interface{}) error {
	update := s.client.Series.UpdateOneID(seriesID)
	if frequency != nil {
		update = update.SetFrequency(*frequency)
	}
	if metadata != nil {
		update = update.SetMetadata(metadata)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set detection detail for series %s: %w", seriesID, err)
	}
	return nil
}

// SetActivePromptIfUnset atomically sets active_prompt_id only if it is
// currently nil, guarding the invariant that a series' first prompt is
// created exactly once. Must be called while holding the series_prompt
// advisory lock for this series; the WHERE clause is a belt-and-suspenders
// check, not the primary guard.
func (s *SeriesService) SetActivePromptIfUnset(ctx context.Context, seriesID, promptID string) (bool, error) {
	n, err := s.client.Series.Update().
		Where(series.IDEQ(seriesID), series.ActivePromptIDIsNil()).
		SetActivePromptID(promptID).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to set active prompt for series %s: %w", seriesID, err)
	}
	return n == 1, nil
}

// MarkRegenerationPending flags a series for the regeneration loop to pick
// up once its active prompt evolves.
func (s *SeriesService) MarkRegenerationPending(ctx context.Context, seriesID string, pending bool) error {
	if err := s.client.Series.UpdateOneID(seriesID).SetRegenerationPending(pending).Exec(ctx); err != nil {
		return fmt.Errorf("failed to update regeneration_pending for series %s: %w", seriesID, err)
	}
	return nil
}

// ListPendingRegeneration returns series flagged for regeneration.
func (s *SeriesService) ListPendingRegeneration(ctx context.Context) ([]*ent.Series, error) {
	list, err := s.client.Series.Query().Where(series.RegenerationPendingEQ(true)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list series pending regeneration: %w", err)
	}
	return list, nil
}

// GetForDocument returns the series a document belongs to, or ErrNotFound
// if the document has not been filed into one.
func (s *SeriesService) GetForDocument(ctx context.Context, documentID string) (*ent.Series, error) {
	link, err := s.client.DocumentSeries.Query().
		Where(documentseries.DocumentIDEQ(documentID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up series link for document %s: %w", documentID, err)
	}
	return s.Get(ctx, link.SeriesID)
}

// ListTop returns the largest series by document count, used as the
// catalog the series detector is shown so it reuses canonical entity
// names instead of inventing near-duplicates.
func (s *SeriesService) ListTop(ctx context.Context, limit int) ([]*ent.Series, error) {
	list, err := s.client.Series.Query().
		Order(ent.Desc(series.FieldDocumentCount)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list top series: %w", err)
	}
	return list, nil
}

// UpdateActivePrompt repoints a series at a newly evolved prompt version
// and flags it for regeneration. Must be called while holding the series
// prompt advisory lock.
func (s *SeriesService) UpdateActivePrompt(ctx context.Context, seriesID, promptID string) error {
	if err := s.client.Series.UpdateOneID(seriesID).
		SetActivePromptID(promptID).
		SetRegenerationPending(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update active prompt for series %s: %w", seriesID, err)
	}
	return nil
}

// Get retrieves a series by ID.
func (s *SeriesService) Get(ctx context.Context, id string) (*ent.Series, error) {
	sr, err := s.client.Series.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get series %s: %w", id, err)
	}
	return sr, nil
}
