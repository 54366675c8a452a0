package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/pipeline"
)

// RunDocument drives a single document through its remaining lifecycle
// synchronously — the --doc-id path. It stops at a terminal status, on a
// deferral, or when a pass makes no progress (already completed documents
// are a no-op, per the optimistic update guards).
func (p *Pool) RunDocument(ctx context.Context, documentID string) error {
	if err := pipeline.EnsureDefaultPrompts(ctx, p.deps); err != nil {
		return fmt.Errorf("failed to seed default prompts: %w", err)
	}
	if err := p.deps.Types.Refresh(ctx); err != nil {
		p.logger.Warn("type registry refresh failed", "error", err)
	}

	routesByStatus := make(map[document.Status]docRoute)
	for _, route := range docRoutes() {
		routesByStatus[route.from] = route
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		doc, err := p.deps.Documents.Get(ctx, documentID)
		if err != nil {
			return err
		}

		switch doc.Status {
		case document.StatusCompleted:
			p.logger.Info("document completed", "document_id", documentID)
			p.drain()
			return nil
		case document.StatusFailed:
			errMsg := ""
			if doc.ErrorMessage != nil {
				errMsg = *doc.ErrorMessage
			}
			return fmt.Errorf("document %s is failed: %s", documentID, errMsg)
		}

		route, ok := routesByStatus[doc.Status]
		if !ok {
			return fmt.Errorf("document %s is mid-step in status %s; run the processor or wait for recovery", documentID, doc.Status)
		}

		if route.claimTo != "" {
			claimed, err := p.deps.Documents.ConditionalUpdate(ctx, doc.ID, route.from, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
				return u.SetStatus(route.claimTo)
			})
			if err != nil {
				if errors.Is(err, data.ErrConcurrentModification) {
					return fmt.Errorf("document %s was claimed by a running processor", documentID)
				}
				return err
			}
			doc = claimed
		}

		result := route.step(ctx, p.deps, doc)
		switch result.Outcome {
		case pipeline.OutcomeAdvanced:
			if route.score != nil {
				p.submitScoring(ctx, route.score, doc.ID)
			}
		case pipeline.OutcomeBenign:
			// Another worker advanced it; loop and re-read.
		case pipeline.OutcomeDeferred:
			return fmt.Errorf("step deferred, retry later: %w", result.Err)
		case pipeline.OutcomeRetryable:
			p.handleTransient(ctx, route, doc, result.Err)
			return fmt.Errorf("transient failure: %w", result.Err)
		case pipeline.OutcomeFatal:
			p.handleFatal(ctx, route, doc, result.Err)
			return fmt.Errorf("step failed: %w", result.Err)
		}
	}
}
