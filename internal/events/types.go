// Package events persists the append-only audit log: every lifecycle
// transition, lock wait, prompt evolution, and notification a document or
// series goes through. Unlike a transient progress feed, rows here are
// never swept — view-events reconstructs full history straight from them.
package events

// Category groups event types for the view-events --category filter.
const (
	CategoryLifecycle = "lifecycle"
	CategoryLock      = "lock"
	CategoryPrompt    = "prompt_evolution"
	CategoryNotify    = "notify"
	CategorySystem    = "system"
)

// Lifecycle event types, one per state-machine transition in a document's
// processing pipeline.
const (
	EventDocumentRegistered       = "document.registered"
	EventOCRStarted               = "ocr.started"
	EventOCRCompleted             = "ocr.completed"
	EventOCRFailed                = "ocr.failed"
	EventClassifyCompleted        = "classify.completed"
	EventClassifyFailed           = "classify.failed"
	EventClassifyTypeSuggested    = "classify.type_suggested"
	EventScoreClassificationDone  = "score_classification.completed"
	EventSummarizeCompleted       = "summarize.completed"
	EventSummarizeFailed          = "summarize.failed"
	EventScoreSummaryDone         = "score_summary.completed"
	EventFileCompleted            = "file.completed"
	EventFileFailed               = "file.failed"
	EventSeriesSummarizeStarted   = "series_summarize.started"
	EventSeriesSummarizeCompleted = "series_summarize.completed"
	EventSeriesScoringCompleted   = "series_scoring.completed"
	EventDocumentCompleted        = "document.completed"
	EventDocumentFailed           = "document.failed"
	EventDocumentRetried          = "document.retried"
)

// Adapter call event types — every OCR/LLM invocation emits exactly one
// of these with token/latency accounting populated.
const (
	EventLLMRequest = "llm_request"
	EventOCRRequest = "ocr_request"
)

// Lock event types.
const (
	EventLockRequested = "lock_requested"
	EventLockAcquired  = "lock_acquired"
	EventLockReleased  = "lock_released"
	EventLockTimeout   = "lock_timeout"
)

// Prompt evolution event types.
const (
	EventPromptEvolved          = "prompt.evolved"
	EventPromptEvolutionSkipped = "prompt.evolution_skipped"
	EventPromptRegenerated      = "prompt.regenerated"
)

// Notification event types.
const (
	EventNotifySent   = "notify.sent"
	EventNotifyFailed = "notify.failed"
)

// File aggregation event types (file-summary generation, not the filing
// lifecycle step).
const (
	EventFileSummaryCompleted = "file_summary.completed"
	EventFileSummaryFailed    = "file_summary.failed"
)

// System event types.
const (
	EventValidationError = "validation_error"
	EventSchemaMismatch  = "schema_mismatch"
	EventManualReprocess = "manual_reprocess"
)
