// Package orchestrator drives the document and file pipelines: a
// single-process cooperative scheduler that polls the database for
// eligible rows, dispatches step functions under per-resource semaphores,
// fans scoring out to background workers, and periodically recovers work
// abandoned by a crash. All cross-worker coordination happens through
// database rows; the in-process state here is only semaphores and an
// inflight set that stops one process double-dispatching a row between
// ticks.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/file"
	"github.com/sirmick/alfrd/internal/config"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
	"github.com/sirmick/alfrd/internal/inbox"
	"github.com/sirmick/alfrd/internal/pipeline"
	"github.com/sirmick/alfrd/internal/regeneration"
)

// scoringWorkers bounds the fire-and-forget scoring fan-out; the LLM
// semaphore inside Deps still caps the actual model calls.
const scoringWorkers = 4

// docRoute binds a claimable status to its step function. Statuses with a
// claimTo sub-state are claimed atomically (FOR UPDATE SKIP LOCKED)
// before the step runs; the rest rely on the step's own conditional
// update plus the inflight set.
type docRoute struct {
	from    document.Status
	claimTo document.Status // zero value = no claim sub-state
	resetTo document.Status // status restored when the step must be retried
	step    func(context.Context, *pipeline.Deps, *ent.Document) pipeline.StepResult
	score   func(context.Context, *pipeline.Deps, *ent.Document) // background, may be nil
}

func docRoutes() []docRoute {
	return []docRoute{
		{
			from:    document.StatusPending,
			claimTo: document.StatusOcrInProgress,
			resetTo: document.StatusPending,
			step:    pipeline.OCR,
		},
		{
			from:    document.StatusOcrCompleted,
			resetTo: document.StatusOcrCompleted,
			step:    pipeline.Classify,
			score:   pipeline.ScoreClassification,
		},
		{
			from:    document.StatusClassified,
			resetTo: document.StatusClassified,
			step:    pipeline.Summarize,
			score:   pipeline.ScoreSummary,
		},
		{
			from:    document.StatusSummarized,
			resetTo: document.StatusSummarized,
			step:    pipeline.File,
		},
		{
			from:    document.StatusFiled,
			claimTo: document.StatusSeriesSummarizing,
			resetTo: document.StatusFiled,
			step:    pipeline.SeriesSummarize,
			score:   pipeline.ScoreSeriesExtraction,
		},
		{
			from:    document.StatusSeriesSummarized,
			resetTo: document.StatusSeriesSummarized,
			step:    pipeline.Finalize,
		},
	}
}

// Pool is the orchestrator: one instance per process.
type Pool struct {
	cfg     config.OrchestratorConfig
	deps    *pipeline.Deps
	scanner *inbox.Scanner
	regen   *regeneration.Activator
	logger  *slog.Logger

	docFlows  *Semaphore
	fileFlows *Semaphore
	fileGen   *Semaphore

	workers    sync.WaitGroup
	scoring    sync.WaitGroup
	scoringSem *Semaphore

	mu       sync.Mutex
	inflight map[string]struct{}

	lastRecovery time.Time
}

// NewPool constructs the orchestrator. deps.OCRSem/LLMSem must already be
// wired (NewSemaphore(textract_workers)/NewSemaphore(bedrock_workers)) by
// the caller so the same semaphores are observable in tests.
func NewPool(cfg config.OrchestratorConfig, deps *pipeline.Deps, scanner *inbox.Scanner, regen *regeneration.Activator) *Pool {
	return &Pool{
		cfg:        cfg,
		deps:       deps,
		scanner:    scanner,
		regen:      regen,
		logger:     slog.Default().With("component", "orchestrator"),
		docFlows:   NewSemaphore(cfg.MaxDocumentFlows),
		fileFlows:  NewSemaphore(cfg.MaxFileFlows),
		fileGen:    NewSemaphore(cfg.FileGenerationWorkers),
		scoringSem: NewSemaphore(scoringWorkers),
		inflight:   make(map[string]struct{}),
	}
}

// Run executes the orchestrator loop until ctx is cancelled. With runOnce
// set it instead loops until the pipeline is quiescent — no work
// dispatched, none in flight — and returns.
func (p *Pool) Run(ctx context.Context, runOnce bool) error {
	if err := pipeline.EnsureDefaultPrompts(ctx, p.deps); err != nil {
		return fmt.Errorf("failed to seed default prompts: %w", err)
	}
	if err := p.deps.Types.Refresh(ctx); err != nil {
		p.logger.Warn("initial type registry refresh failed", "error", err)
	}
	if err := p.Recover(ctx); err != nil {
		p.logger.Error("startup recovery failed", "error", err)
	}
	p.lastRecovery = time.Now()

	p.logger.Info("orchestrator started",
		"poll_interval", p.cfg.PollInterval,
		"max_document_flows", p.cfg.MaxDocumentFlows,
		"max_file_flows", p.cfg.MaxFileFlows,
		"run_once", runOnce)

	for {
		dispatched := p.tick(ctx)

		if runOnce && dispatched == 0 && p.inflightCount() == 0 {
			break
		}

		select {
		case <-ctx.Done():
			p.drain()
			return ctx.Err()
		case <-time.After(p.cfg.PollInterval):
		}
	}

	p.drain()
	p.logger.Info("orchestrator finished single pass")
	return nil
}

// tick runs one scheduler pass: inbox sweep, document dispatch, file
// dispatch, regeneration activation, and a recovery sweep when due.
// Returns how many work items were dispatched.
func (p *Pool) tick(ctx context.Context) int {
	if ctx.Err() != nil {
		return 0
	}

	if registered, err := p.scanner.Scan(ctx); err != nil {
		p.logger.Error("inbox scan failed", "error", err)
	} else if registered > 0 {
		p.logger.Info("inbox scan registered documents", "count", registered)
	}

	dispatched := p.dispatchDocuments(ctx)
	dispatched += p.dispatchFiles(ctx)

	if err := p.regen.Tick(ctx); err != nil && !errors.Is(err, context.Canceled) {
		p.logger.Error("regeneration activation failed", "error", err)
	}

	if time.Since(p.lastRecovery) >= p.cfg.RecoveryInterval {
		if err := p.Recover(ctx); err != nil {
			p.logger.Error("recovery sweep failed", "error", err)
		}
		p.lastRecovery = time.Now()
	}
	return dispatched
}

// dispatchDocuments walks the route table and hands every eligible
// document to a worker goroutine, bounded by the document_flows cap.
func (p *Pool) dispatchDocuments(ctx context.Context) int {
	dispatched := 0
	for _, route := range docRoutes() {
		for {
			if ctx.Err() != nil {
				return dispatched
			}
			if !p.docFlows.TryAcquire() {
				return dispatched
			}

			doc, ok := p.nextDocument(ctx, route)
			if !ok {
				p.docFlows.Release()
				break
			}

			p.workers.Add(1)
			dispatched++
			go func(route docRoute, doc *ent.Document) {
				defer p.workers.Done()
				defer p.docFlows.Release()
				defer p.clearInflight(doc.ID)
				p.runDocumentStep(ctx, route, doc)
			}(route, doc)
		}
	}
	return dispatched
}

// nextDocument selects one document for a route, claiming it atomically
// when the route has an in-progress sub-state and otherwise reserving it
// in the inflight set.
func (p *Pool) nextDocument(ctx context.Context, route docRoute) (*ent.Document, bool) {
	if route.claimTo != "" {
		doc, err := p.deps.Documents.ClaimNext(ctx, route.from, route.claimTo)
		if err != nil {
			if !errors.Is(err, data.ErrNotFound) && !errors.Is(err, context.Canceled) {
				p.logger.Error("claim failed", "status", route.from, "error", err)
			}
			return nil, false
		}
		p.markInflight(doc.ID)
		return doc, true
	}

	docs, err := p.deps.Documents.ListByStatus(ctx, route.from, p.cfg.MaxDocumentFlows)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			p.logger.Error("eligible document query failed", "status", route.from, "error", err)
		}
		return nil, false
	}
	for _, doc := range docs {
		if p.markInflight(doc.ID) {
			return doc, true
		}
	}
	return nil, false
}

// runDocumentStep executes one step and applies the orchestrator-side
// error policy: it is the only place retry_count is mutated.
func (p *Pool) runDocumentStep(ctx context.Context, route docRoute, doc *ent.Document) {
	log := p.logger.With("document_id", doc.ID, "from_status", route.from)
	result := route.step(ctx, p.deps, doc)

	switch result.Outcome {
	case pipeline.OutcomeAdvanced:
		log.Debug("step advanced")
		if route.score != nil {
			p.submitScoring(ctx, route.score, doc.ID)
		}
	case pipeline.OutcomeBenign:
		log.Debug("step found row already advanced")
	case pipeline.OutcomeDeferred:
		log.Info("step deferred", "error", result.Err)
		// A claimed row must not sit in its in-progress sub-state until
		// stale recovery notices; give the claim back for the next tick.
		if route.claimTo != "" {
			if _, err := p.deps.Documents.ConditionalUpdate(ctx, doc.ID, route.claimTo, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
				return u.SetStatus(route.resetTo)
			}); err != nil && !errors.Is(err, data.ErrConcurrentModification) {
				log.Error("failed to release claim after deferral", "error", err)
			}
		}
	case pipeline.OutcomeRetryable:
		p.handleTransient(ctx, route, doc, result.Err)
	case pipeline.OutcomeFatal:
		p.handleFatal(ctx, route, doc, result.Err)
	}
}

// handleTransient restores a claimed row to its claimable predecessor
// without spending retry budget; an unclaimed row never transitioned and
// simply becomes eligible again next tick. Cancellation is the exception:
// a cancelled write must record failed, not linger as retryable.
func (p *Pool) handleTransient(ctx context.Context, route docRoute, doc *ent.Document, stepErr error) {
	if errors.Is(stepErr, context.Canceled) {
		p.markCancelled(doc.ID)
		return
	}
	p.logger.Warn("transient step failure", "document_id", doc.ID, "error", stepErr)
	if route.claimTo == "" {
		return
	}
	if _, err := p.deps.Documents.ConditionalUpdate(ctx, doc.ID, route.claimTo, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.SetStatus(route.resetTo)
	}); err != nil && !errors.Is(err, data.ErrConcurrentModification) {
		p.logger.Error("failed to restore document after transient error", "document_id", doc.ID, "error", err)
	}
}

// handleFatal spends one unit of retry budget or, once the budget is
// exhausted, moves the document to the terminal failed status.
func (p *Pool) handleFatal(ctx context.Context, route docRoute, doc *ent.Document, stepErr error) {
	if errors.Is(stepErr, context.Canceled) {
		p.markCancelled(doc.ID)
		return
	}

	// Steps that already wrote failed (empty OCR text, undecodable model
	// output) report OutcomeFatal too; don't spend budget on a row that
	// is terminal already.
	fresh, err := p.deps.Documents.Get(ctx, doc.ID)
	if err != nil {
		p.logger.Error("failed to re-read document after fatal error", "document_id", doc.ID, "error", err)
		return
	}
	if fresh.Status == document.StatusFailed || fresh.Status == document.StatusCompleted {
		return
	}

	errMsg := "step failed"
	if stepErr != nil {
		errMsg = stepErr.Error()
	}

	if fresh.RetryCount >= p.cfg.MaxRetries {
		if _, err := p.deps.Documents.MarkFailed(ctx, doc.ID, "max retries exceeded: "+errMsg); err != nil {
			p.logger.Error("failed to mark document failed", "document_id", doc.ID, "error", err)
			return
		}
		_ = p.deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventDocumentFailed, map[string]interface{}{
			"reason":      errMsg,
			"retry_count": fresh.RetryCount,
		})
		p.deps.Notify.DocumentFailed(ctx, doc.ID, doc.Filename, errMsg)
		return
	}

	if _, err := p.deps.Documents.ConditionalUpdate(ctx, doc.ID, fresh.Status, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.
			SetStatus(route.resetTo).
			AddRetryCount(1).
			SetErrorMessage(errMsg)
	}); err != nil && !errors.Is(err, data.ErrConcurrentModification) {
		p.logger.Error("failed to schedule document retry", "document_id", doc.ID, "error", err)
		return
	}
	_ = p.deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventDocumentRetried, map[string]interface{}{
		"reason":      errMsg,
		"retry_count": fresh.RetryCount + 1,
	})
}

// markCancelled records the shutdown-interrupted terminal state. Uses a
// background context: the worker's own ctx is the thing that fired.
func (p *Pool) markCancelled(documentID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := p.deps.Documents.MarkFailed(ctx, documentID, "cancelled"); err != nil {
		p.logger.Error("failed to record cancellation", "document_id", documentID, "error", err)
	}
}

// dispatchFiles claims pending and outdated files for summary generation,
// bounded by the file_flows cap.
func (p *Pool) dispatchFiles(ctx context.Context) int {
	claims := []struct {
		from, to file.Status
	}{
		{file.StatusPending, file.StatusGenerating},
		{file.StatusOutdated, file.StatusRegenerating},
	}

	dispatched := 0
	for _, claim := range claims {
		for {
			if ctx.Err() != nil {
				return dispatched
			}
			if !p.fileFlows.TryAcquire() {
				return dispatched
			}

			f, err := p.deps.Files.ClaimNext(ctx, claim.from, claim.to)
			if err != nil {
				p.fileFlows.Release()
				if !errors.Is(err, data.ErrNotFound) && !errors.Is(err, context.Canceled) {
					p.logger.Error("file claim failed", "status", claim.from, "error", err)
				}
				break
			}

			p.workers.Add(1)
			dispatched++
			go func(f *ent.File, claimedAs, resetTo file.Status) {
				defer p.workers.Done()
				defer p.fileFlows.Release()
				p.runFileStep(ctx, f, claimedAs, resetTo)
			}(f, claim.to, claim.from)
		}
	}
	return dispatched
}

func (p *Pool) runFileStep(ctx context.Context, f *ent.File, claimedAs, resetTo file.Status) {
	if err := p.fileGen.Acquire(ctx); err != nil {
		p.resetFile(f.ID, claimedAs, resetTo)
		return
	}
	defer p.fileGen.Release()

	result := pipeline.GenerateFileSummary(ctx, p.deps, f)
	switch result.Outcome {
	case pipeline.OutcomeAdvanced:
		p.logger.Info("file summary generated", "file_id", f.ID)
	case pipeline.OutcomeRetryable:
		p.logger.Warn("file summary deferred on transient error", "file_id", f.ID, "error", result.Err)
		p.resetFile(f.ID, claimedAs, resetTo)
	case pipeline.OutcomeFatal:
		p.logger.Error("file summary failed", "file_id", f.ID, "error", result.Err)
	default:
	}
}

// resetFile restores a claimed file for the next tick, e.g. after a
// transient adapter error or a shutdown race.
func (p *Pool) resetFile(fileID string, claimedAs, resetTo file.Status) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.deps.Files.ResetClaim(ctx, fileID, claimedAs, resetTo); err != nil && !errors.Is(err, data.ErrConcurrentModification) {
		p.logger.Error("failed to restore claimed file", "file_id", fileID, "error", err)
	}
}

// submitScoring hands a scorer to the bounded background set. Scoring
// never blocks the lifecycle: if every scoring slot is busy the score is
// dropped with a log line rather than queueing behind the pipeline.
func (p *Pool) submitScoring(ctx context.Context, score func(context.Context, *pipeline.Deps, *ent.Document), documentID string) {
	if !p.scoringSem.TryAcquire() {
		p.logger.Info("scoring skipped, workers saturated", "document_id", documentID)
		return
	}
	p.scoring.Add(1)
	go func() {
		defer p.scoring.Done()
		defer p.scoringSem.Release()

		// Re-read so the scorer sees the step's committed writes.
		doc, err := p.deps.Documents.Get(ctx, documentID)
		if err != nil {
			p.logger.Warn("scoring skipped, document unreadable", "document_id", documentID, "error", err)
			return
		}
		score(ctx, p.deps, doc)
	}()
}

// drain waits for in-flight workers and background scorers, up to the
// configured shutdown timeout.
func (p *Pool) drain() {
	done := make(chan struct{})
	go func() {
		p.workers.Wait()
		p.scoring.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(p.cfg.ShutdownTimeout):
		p.logger.Warn("shutdown timeout elapsed before all workers drained")
	}
}

func (p *Pool) markInflight(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.inflight[id]; exists {
		return false
	}
	p.inflight[id] = struct{}{}
	return true
}

func (p *Pool) clearInflight(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, id)
}

func (p *Pool) inflightCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.inflight)
}
