package data

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/prompt"
)

// PromptService manages versioned, self-evolving prompts: one active row
// per (prompt_type, document_type) or (prompt_type, series_id) family.
type PromptService struct {
	client *ent.Client
}

// NewPromptService constructs a PromptService.
func NewPromptService(client *ent.Client) *PromptService {
	return &PromptService{client: client}
}

// GetActiveForDocumentType returns the active prompt for a (promptType, documentType) family.
func (s *PromptService) GetActiveForDocumentType(ctx context.Context, promptType prompt.PromptType, documentType string) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			prompt.PromptTypeEQ(promptType),
			prompt.DocumentTypeEQ(documentType),
			prompt.IsActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active prompt for %s/%s: %w", promptType, documentType, err)
	}
	return p, nil
}

// GetActiveGlobal returns the active prompt for a family that isn't
// scoped to a document type or series — the classifier (which produces
// document_type, so can't be keyed by it) and the file_summarizer/
// series_detector families (scoped to neither a single document type nor
// a single series).
func (s *PromptService) GetActiveGlobal(ctx context.Context, promptType prompt.PromptType) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			prompt.PromptTypeEQ(promptType),
			prompt.DocumentTypeIsNil(),
			prompt.SeriesIDIsNil(),
			prompt.IsActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active global prompt for %s: %w", promptType, err)
	}
	return p, nil
}

// GetActiveForSeries returns the active series_summarizer prompt for a series.
func (s *PromptService) GetActiveForSeries(ctx context.Context, seriesID string) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			prompt.PromptTypeEQ(prompt.PromptTypeSeriesSummarizer),
			prompt.SeriesIDEQ(seriesID),
			prompt.IsActiveEQ(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get active series prompt for %s: %w", seriesID, err)
	}
	return p, nil
}

// CreatePromptParams describes the first version of a new prompt family.
type CreatePromptParams struct {
	PromptType          prompt.PromptType
	DocumentType        *string
	SeriesID            *string
	Text                string
	CanEvolve           bool
	ScoreCeiling        float64
	RegeneratesOnUpdate bool
	PerformanceMetrics  map[string]interface{}
}

// CreateInitial creates the first version of a prompt family, active from creation.
func (s *PromptService) CreateInitial(ctx context.Context, params CreatePromptParams) (*ent.Prompt, error) {
	if params.Text == "" {
		return nil, NewValidationError("prompt_text", "required")
	}

	create := s.client.Prompt.Create().
		SetID(uuid.NewString()).
		SetPromptType(params.PromptType).
		SetPromptText(params.Text).
		SetVersion(1).
		SetIsActive(true).
		SetCanEvolve(params.CanEvolve).
		SetScoreCeiling(params.ScoreCeiling).
		SetRegeneratesOnUpdate(params.RegeneratesOnUpdate)
	if params.DocumentType != nil {
		create = create.SetDocumentType(*params.DocumentType)
	}
	if params.SeriesID != nil {
		create = create.SetSeriesID(*params.SeriesID)
	}
	if params.PerformanceMetrics != nil {
		create = create.SetPerformanceMetrics(params.PerformanceMetrics)
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial prompt: %w", err)
	}
	return p, nil
}

// Evolve archives the current active prompt and activates a new version
// derived from it. Must be called while holding the prompt family advisory
// lock — archiving and activating are two statements, not one atomic write.
func (s *PromptService) Evolve(ctx context.Context, current *ent.Prompt, newText string) (*ent.Prompt, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.Prompt.UpdateOneID(current.ID).
		SetIsActive(false).
		SetArchivedAt(time.Now()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to archive prompt %s: %w", current.ID, err)
	}

	create := tx.Prompt.Create().
		SetID(uuid.NewString()).
		SetPromptType(current.PromptType).
		SetPromptText(newText).
		SetVersion(current.Version + 1).
		SetIsActive(true).
		SetCanEvolve(current.CanEvolve).
		SetScoreCeiling(current.ScoreCeiling).
		SetRegeneratesOnUpdate(current.RegeneratesOnUpdate).
		SetParentPromptID(current.ID)
	if current.DocumentType != nil {
		create = create.SetDocumentType(*current.DocumentType)
	}
	if current.SeriesID != nil {
		create = create.SetSeriesID(*current.SeriesID)
	}
	if current.PerformanceMetrics != nil {
		create = create.SetPerformanceMetrics(current.PerformanceMetrics)
	}

	next, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create evolved prompt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit prompt evolution: %w", err)
	}
	return next, nil
}

// Get retrieves a prompt by ID.
func (s *PromptService) Get(ctx context.Context, id string) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prompt %s: %w", id, err)
	}
	return p, nil
}

// List returns prompts, optionally filtered by type, active rows first and
// then by descending version. Archived versions are excluded unless
// includeArchived is set.
func (s *PromptService) List(ctx context.Context, promptType *prompt.PromptType, includeArchived bool) ([]*ent.Prompt, error) {
	query := s.client.Prompt.Query()
	if promptType != nil {
		query = query.Where(prompt.PromptTypeEQ(*promptType))
	}
	if !includeArchived {
		query = query.Where(prompt.IsActiveEQ(true))
	}

	prompts, err := query.
		Order(ent.Desc(prompt.FieldIsActive), ent.Desc(prompt.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return prompts, nil
}

// RecordScore folds a new document score into the prompt's running average
// and sample size, used to decide whether evolution should trigger.
func (s *PromptService) RecordScore(ctx context.Context, promptID string, score float64) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Get(ctx, promptID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prompt %s: %w", promptID, err)
	}

	newSampleSize := p.SampleSize + 1
	var newAvg float64
	if p.AvgScore != nil {
		newAvg = (*p.AvgScore*float64(p.SampleSize) + score) / float64(newSampleSize)
	} else {
		newAvg = score
	}

	updated, err := s.client.Prompt.UpdateOneID(promptID).
		SetSampleSize(newSampleSize).
		SetAvgScore(newAvg).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record score for prompt %s: %w", promptID, err)
	}
	return updated, nil
}
