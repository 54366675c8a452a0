package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/events"
)

// RegenerateSeries re-extracts every document in a series whose
// series_prompt_id lags the active prompt, then clears
// regeneration_pending once the whole series is current. Scoring is
// deliberately NOT invoked here — scoring a regeneration could evolve
// the prompt again and recurse forever.
func RegenerateSeries(ctx context.Context, deps *Deps, sr *ent.Series) error {
	if sr.ActivePromptID == nil {
		// Nothing to align against; clear the stray flag.
		return deps.Series.MarkRegenerationPending(ctx, sr.ID, false)
	}

	activePrompt, err := deps.Prompts.Get(ctx, *sr.ActivePromptID)
	if err != nil {
		return fmt.Errorf("failed to load active prompt for series %s: %w", sr.ID, err)
	}

	stale, err := deps.Documents.ListNeedingRegeneration(ctx, sr.ID, activePrompt.ID)
	if err != nil {
		return err
	}

	log := deps.Logger.With("series_id", sr.ID, "prompt_id", activePrompt.ID)
	regenerated := 0
	for _, doc := range stale {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		extraction, violations, err := extractWithSeriesPrompt(ctx, deps, doc, activePrompt)
		if err != nil {
			if errors.Is(err, adapters.ErrTransient) {
				// Leave the document stale; the next activation tick
				// picks it up again.
				log.Warn("regeneration extraction deferred", "document_id", doc.ID, "error", err)
				continue
			}
			return fmt.Errorf("failed to regenerate document %s: %w", doc.ID, err)
		}
		if len(violations) > 0 {
			_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventSchemaMismatch, map[string]interface{}{
				"prompt_id":  activePrompt.ID,
				"violations": violations,
			})
		}

		method := document.ExtractionMethodSeries
		if doc.StructuredDataGeneric != nil {
			method = document.ExtractionMethodBoth
		}
		if _, err := deps.Documents.UpdateSeriesExtraction(ctx, doc.ID, extraction, activePrompt.ID, method); err != nil {
			return err
		}

		_ = deps.Events.Document(ctx, doc.ID, events.CategoryPrompt, events.EventPromptRegenerated, map[string]interface{}{
			"series_id": sr.ID,
			"prompt_id": activePrompt.ID,
			"version":   activePrompt.Version,
		})
		regenerated++
	}

	// Only clear the flag when every document is confirmed current; a
	// deferred extraction above leaves it set for the next tick.
	remaining, err := deps.Documents.ListNeedingRegeneration(ctx, sr.ID, activePrompt.ID)
	if err != nil {
		return err
	}
	if len(remaining) > 0 {
		log.Info("regeneration pass incomplete", "regenerated", regenerated, "remaining", len(remaining))
		return nil
	}

	if err := deps.Series.MarkRegenerationPending(ctx, sr.ID, false); err != nil {
		return err
	}
	log.Info("series regeneration complete", "regenerated", regenerated)
	return nil
}
