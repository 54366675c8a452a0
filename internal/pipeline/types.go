// Package pipeline implements the document and file lifecycle step
// functions dispatched by internal/orchestrator. Each file implements one
// documented transition; none of them loop or retry internally — retry
// accounting belongs to the orchestrator alone.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
	"github.com/sirmick/alfrd/internal/locks"
	"github.com/sirmick/alfrd/internal/notify"
	"github.com/sirmick/alfrd/internal/typeregistry"
)

// Outcome classifies how a step call concluded, mirroring the error-kind
// taxonomy: a step returns exactly one of these, never an ad-hoc error the
// orchestrator has to re-classify.
type Outcome int

const (
	// OutcomeAdvanced means the step wrote its transition successfully.
	OutcomeAdvanced Outcome = iota
	// OutcomeRetryable means a transient adapter error occurred; the
	// orchestrator's retry budget governs reattempt, no row was mutated.
	OutcomeRetryable
	// OutcomeFatal means a non-retryable adapter error occurred; the
	// orchestrator increments retry_count and may flip to failed.
	OutcomeFatal
	// OutcomeDeferred means a lock wait timed out or similar soft
	// condition arose; retry on the next tick, not a failure.
	OutcomeDeferred
	// OutcomeBenign means a conditional update found the row already
	// moved by another worker; nothing to do.
	OutcomeBenign
)

// StepResult is returned by every step function.
type StepResult struct {
	Outcome Outcome
	Err     error
}

func advanced() StepResult           { return StepResult{Outcome: OutcomeAdvanced} }
func benign() StepResult             { return StepResult{Outcome: OutcomeBenign} }
func deferred(err error) StepResult  { return StepResult{Outcome: OutcomeDeferred, Err: err} }
func retryable(err error) StepResult { return StepResult{Outcome: OutcomeRetryable, Err: err} }
func fatal(err error) StepResult     { return StepResult{Outcome: OutcomeFatal, Err: err} }

// Semaphore bounds concurrent adapter calls. internal/orchestrator
// constructs the concrete implementation (one per resource: textract,
// bedrock, file_generation) and wires it into Deps, so a step function
// only ever sees this interface and never the orchestrator package
// itself — steps must never import orchestrator.
type Semaphore interface {
	Acquire(ctx context.Context) error
	Release()
}

// Deps bundles every collaborator a step function needs. Steps take Deps
// plus a document/file/series id rather than embedding state, so the
// orchestrator can construct it once and share it across worker goroutines.
type Deps struct {
	Documents *data.DocumentService
	Tags      *data.TagService
	Series    *data.SeriesService
	Files     *data.FileService
	Prompts   *data.PromptService
	Events    *events.Publisher
	Locks     *locks.Manager
	Types     *typeregistry.Registry
	Notify    *notify.Service

	OCR        adapters.OCR
	LLM        adapters.LLM
	OCRSem     Semaphore
	LLMSem     Semaphore
	OCRTimeout time.Duration
	LLMTimeout time.Duration

	// ArtifactsDir is where the OCR step persists {doc_id}.txt and
	// {doc_id}_llm.json; empty disables artifact writes (tests).
	ArtifactsDir string

	// Prompt evolution thresholds, from the prompts config section.
	PromptUpdateThreshold  float64
	MinSamplesForEvolution int
	DefaultScoreCeiling    float64

	// SeriesCatalogLimit caps the existing-series catalog shown to the
	// series detector.
	SeriesCatalogLimit int

	Logger *slog.Logger
}

// isLockTimeout reports whether err is an advisory-lock wait timeout,
// which steps surface as OutcomeDeferred rather than a failure.
func isLockTimeout(err error) bool {
	return errors.Is(err, locks.ErrTimeout)
}

// callOCR bounds an OCR adapter call by the textract semaphore and a
// per-call timeout, recording exactly one ocr_request event.
func (d *Deps) callOCR(ctx context.Context, documentID, folder string) (*adapters.ExtractResult, error) {
	if err := d.OCRSem.Acquire(ctx); err != nil {
		return nil, err
	}
	defer d.OCRSem.Release()

	callCtx, cancel := context.WithTimeout(ctx, d.OCRTimeout)
	defer cancel()

	start := time.Now()
	result, err := d.OCR.Extract(callCtx, folder)
	latency := time.Since(start).Milliseconds()

	details := map[string]interface{}{"folder": folder, "latency_ms": latency}
	if err != nil {
		details["error"] = err.Error()
	} else {
		details["avg_confidence"] = result.AvgConfidence
		details["document_count"] = result.DocumentCount
	}
	_ = d.Events.Document(ctx, documentID, events.CategoryLifecycle, events.EventOCRRequest, details)

	return result, err
}

// callLLM bounds an LLM adapter call by the bedrock semaphore and a
// per-call timeout, recording exactly one llm_request event with token
// and latency accounting.
func (d *Deps) callLLM(ctx context.Context, documentID *string, seriesID *string, promptText, userText string, opts adapters.InvokeOptions) (*adapters.InvokeResult, error) {
	if err := d.LLMSem.Acquire(ctx); err != nil {
		return nil, err
	}
	defer d.LLMSem.Release()

	callCtx, cancel := context.WithTimeout(ctx, d.LLMTimeout)
	defer cancel()

	result, err := d.LLM.Invoke(callCtx, promptText, userText, opts)

	details := map[string]interface{}{}
	if err != nil {
		details["error"] = err.Error()
	} else {
		details["request_tokens"] = result.RequestTokens
		details["response_tokens"] = result.ResponseTokens
		details["latency_ms"] = result.LatencyMS
		details["model_id"] = result.ModelID
	}

	switch {
	case documentID != nil:
		_ = d.Events.Document(ctx, *documentID, events.CategoryLifecycle, events.EventLLMRequest, details)
	case seriesID != nil:
		_ = d.Events.Series(ctx, *seriesID, events.CategoryLifecycle, events.EventLLMRequest, details)
	default:
		_ = d.Events.System(ctx, events.CategoryLifecycle, events.EventLLMRequest, details)
	}

	return result, err
}
