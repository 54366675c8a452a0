package orchestrator

import (
	"context"
	"fmt"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/file"
	"github.com/sirmick/alfrd/internal/events"
)

// staleDocumentResets maps each in-progress document status to the
// claimable state recovery restores it to.
func staleDocumentResets() map[document.Status]document.Status {
	return map[document.Status]document.Status{
		document.StatusOcrInProgress:     document.StatusPending,
		document.StatusSeriesSummarizing: document.StatusFiled,
		document.StatusSeriesScoring:     document.StatusSeriesSummarized,
	}
}

// staleFileResets is the file-side analog.
func staleFileResets() map[file.Status]file.Status {
	return map[file.Status]file.Status{
		file.StatusGenerating:   file.StatusPending,
		file.StatusRegenerating: file.StatusOutdated,
	}
}

// Recover finds work abandoned mid-step — rows stuck in an in-progress
// status with no update for longer than stale_timeout — and either
// re-queues it (one unit of retry budget spent) or, when the budget is
// gone, marks it failed. Runs at startup and on the recovery interval;
// safe to run concurrently across orchestrator instances since every
// per-row update is conditional.
func (p *Pool) Recover(ctx context.Context) error {
	for inProgress, resetTo := range staleDocumentResets() {
		recovered, err := p.deps.Documents.ClaimStale(ctx, inProgress, resetTo, p.cfg.StaleTimeout)
		if err != nil {
			return fmt.Errorf("stale sweep for %s failed: %w", inProgress, err)
		}
		for _, doc := range recovered {
			p.finishRecovery(ctx, doc, inProgress)
		}
	}

	for inProgress, resetTo := range staleFileResets() {
		recovered, err := p.deps.Files.ResetStale(ctx, inProgress, resetTo, p.cfg.StaleTimeout)
		if err != nil {
			return fmt.Errorf("stale file sweep for %s failed: %w", inProgress, err)
		}
		for _, f := range recovered {
			p.logger.Warn("recovered stale file", "file_id", f.ID, "was", inProgress)
		}
	}
	return nil
}

// finishRecovery applies the retry budget to a just-reset document:
// ClaimStale already moved it back and charged one retry, so all that
// remains is the exceeded-budget check and the audit trail.
func (p *Pool) finishRecovery(ctx context.Context, doc *ent.Document, was document.Status) {
	if doc.RetryCount > p.cfg.MaxRetries {
		if _, err := p.deps.Documents.MarkFailed(ctx, doc.ID, "max retries exceeded"); err != nil {
			p.logger.Error("failed to fail recovered document", "document_id", doc.ID, "error", err)
			return
		}
		_ = p.deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventDocumentFailed, map[string]interface{}{
			"reason":      "max retries exceeded",
			"was_status":  was,
			"retry_count": doc.RetryCount,
		})
		p.deps.Notify.DocumentFailed(ctx, doc.ID, doc.Filename, "max retries exceeded")
		return
	}

	p.logger.Warn("recovered stale document", "document_id", doc.ID, "was", was, "retry_count", doc.RetryCount)
	_ = p.deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventDocumentRetried, map[string]interface{}{
		"reason":      "stale in-progress state recovered",
		"was_status":  was,
		"retry_count": doc.RetryCount,
	})
}
