package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
)

// Finalize runs the series_summarized -> completed transition, verifying
// the completion contract before flipping the terminal flag: text, type,
// and generic extraction must be present, and a series-assigned document
// must carry the series' current active prompt.
func Finalize(ctx context.Context, deps *Deps, doc *ent.Document) StepResult {
	if doc.ExtractedText == nil || *doc.ExtractedText == "" {
		return failCompletion(ctx, deps, doc.ID, "cannot complete: extracted_text is empty")
	}
	if doc.DocumentType == nil || *doc.DocumentType == "" {
		return failCompletion(ctx, deps, doc.ID, "cannot complete: document_type is not set")
	}
	if len(doc.StructuredDataGeneric) == 0 {
		return failCompletion(ctx, deps, doc.ID, "cannot complete: structured_data_generic is empty")
	}

	sr, err := deps.Series.GetForDocument(ctx, doc.ID)
	if err != nil && !errors.Is(err, data.ErrNotFound) {
		return fatal(err)
	}
	if sr != nil && sr.ActivePromptID != nil {
		if doc.SeriesPromptID == nil || *doc.SeriesPromptID != *sr.ActivePromptID {
			// Stale extraction: the prompt evolved between series
			// summarize and now. The regeneration worker will realign
			// it; completion waits for the next tick.
			return deferred(fmt.Errorf("document %s extraction predates series %s active prompt", doc.ID, sr.ID))
		}
		if len(doc.StructuredData) == 0 {
			return failCompletion(ctx, deps, doc.ID, "cannot complete: series document has empty structured_data")
		}
	}

	now := time.Now()
	_, err = deps.Documents.ConditionalUpdate(ctx, doc.ID, document.StatusSeriesSummarized, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.
			SetStatus(document.StatusCompleted).
			SetCompletedAt(now)
	})
	if err != nil {
		if errors.Is(err, data.ErrConcurrentModification) {
			return benign()
		}
		return fatal(err)
	}

	_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventDocumentCompleted, nil)
	return advanced()
}

func failCompletion(ctx context.Context, deps *Deps, documentID, reason string) StepResult {
	if _, err := deps.Documents.MarkFailed(ctx, documentID, reason); err != nil {
		return fatal(err)
	}
	_ = deps.Events.Document(ctx, documentID, events.CategoryLifecycle, events.EventDocumentFailed, map[string]interface{}{"reason": reason})
	return fatal(errors.New(reason))
}
