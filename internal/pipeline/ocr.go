package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
)

// OCR runs the ocr_in_progress -> ocr_completed transition: it reads
// doc.SourcePath, calls the OCR adapter, and persists the extracted text
// and average confidence. doc must already be claimed (status
// ocr_in_progress) by the orchestrator.
func OCR(ctx context.Context, deps *Deps, doc *ent.Document) StepResult {
	result, err := deps.callOCR(ctx, doc.ID, doc.SourcePath)
	if err != nil {
		return classifyAdapterError(err)
	}

	if result.FullText == "" {
		errMsg := "OCR returned empty text"
		if _, ferr := deps.Documents.MarkFailed(ctx, doc.ID, errMsg); ferr != nil {
			return fatal(ferr)
		}
		_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventOCRFailed, map[string]interface{}{"reason": errMsg})
		return fatal(errors.New(errMsg))
	}

	if deps.ArtifactsDir != "" {
		if err := writeArtifacts(deps.ArtifactsDir, doc.ID, result); err != nil {
			// The text itself still lands in the DB; a missing artifact is
			// recoverable by reprocessing, so log and continue.
			deps.Logger.Warn("failed to write OCR artifacts", "document_id", doc.ID, "error", err)
		}
	}

	_, err = deps.Documents.ConditionalUpdate(ctx, doc.ID, document.StatusOcrInProgress, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.
			SetStatus(document.StatusOcrCompleted).
			SetExtractedText(result.FullText).
			SetAvgOcrConfidence(result.AvgConfidence)
	})
	if err != nil {
		if errors.Is(err, data.ErrConcurrentModification) {
			return benign()
		}
		return fatal(fmt.Errorf("failed to persist OCR result for %s: %w", doc.ID, err))
	}

	_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventOCRCompleted, map[string]interface{}{
		"document_count": result.DocumentCount,
		"avg_confidence": result.AvgConfidence,
	})
	return advanced()
}

// classifyAdapterError maps an adapters error into the matching StepResult,
// per the transient/fatal split in the error-kind taxonomy.
func classifyAdapterError(err error) StepResult {
	if errors.Is(err, adapters.ErrTransient) {
		return retryable(err)
	}
	return fatal(err)
}
