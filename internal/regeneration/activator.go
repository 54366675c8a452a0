// Package regeneration activates series regeneration: when a series
// prompt evolves, the scoring path flags the series and this loop
// realigns every document in it with the new active prompt. It also
// houses the artifact retention sweep — background housekeeping that,
// like regeneration, runs off the orchestrator tick without being a
// lifecycle step.
package regeneration

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sirmick/alfrd/internal/pipeline"
)

// Activator scans for series with regeneration_pending and runs the
// regeneration worker over each.
type Activator struct {
	deps   *pipeline.Deps
	logger *slog.Logger
}

// NewActivator constructs an Activator.
func NewActivator(deps *pipeline.Deps) *Activator {
	return &Activator{
		deps:   deps,
		logger: slog.Default().With("component", "regeneration"),
	}
}

// Tick runs one activation pass. A failing series does not stop the
// others; the first error is returned after the pass completes so the
// orchestrator can log it.
func (a *Activator) Tick(ctx context.Context) error {
	pending, err := a.deps.Series.ListPendingRegeneration(ctx)
	if err != nil {
		return err
	}

	var firstErr error
	for _, sr := range pending {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := pipeline.RegenerateSeries(ctx, a.deps, sr); err != nil {
			if errors.Is(err, context.Canceled) {
				return err
			}
			a.logger.Error("series regeneration failed", "series_id", sr.ID, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
