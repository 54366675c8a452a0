package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/prompt"
	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
	"github.com/sirmick/alfrd/internal/locks"
)

// schemaDefinitionKey is where a series_summarizer prompt keeps its
// declared schema inside performance_metrics.
const schemaDefinitionKey = "schema_definition"

// sampleTextLimit bounds how much raw text the prompt builder sees; the
// schema is inferred from structure, not volume.
const sampleTextLimit = 4000

// seriesPromptBuilderText is the meta-prompt that asks the model to design
// a series-specific extraction prompt plus the strict schema every
// document in the series will be held to.
const seriesPromptBuilderText = `You design extraction prompts for recurring document series. You are given one document's text and its generic extraction. Respond with JSON: {"prompt_text": string, "schema_definition": object}. schema_definition maps each field name to one of "string", "number", "boolean", "array", "object". prompt_text must instruct a model to extract exactly those fields as JSON from a document of this series. Include every recurring field (dates, amounts, identifiers); exclude one-off noise.`

// SeriesSummarize runs the series_summarizing -> series_summarized
// transition. doc is already claimed (status series_summarizing). If the
// document's series has no prompt yet, the first worker to get here
// creates one under the series prompt lock; everyone then re-extracts
// with the active prompt so all documents in the series share a schema.
func SeriesSummarize(ctx context.Context, deps *Deps, doc *ent.Document) StepResult {
	sr, err := deps.Series.GetForDocument(ctx, doc.ID)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			// Filed without a series assignment; nothing series-scoped to do.
			return advanceToSeriesSummarized(ctx, deps, doc)
		}
		return fatal(err)
	}

	activePrompt, err := ensureSeriesPrompt(ctx, deps, doc, sr)
	if err != nil {
		if isLockTimeout(err) {
			return deferred(err)
		}
		if errors.Is(err, adapters.ErrTransient) {
			return retryable(err)
		}
		return fatal(err)
	}

	extraction, violations, err := extractWithSeriesPrompt(ctx, deps, doc, activePrompt)
	if err != nil {
		return classifyAdapterError(err)
	}
	if len(violations) > 0 {
		// Persist anyway; the scorer is responsible for demanding a
		// better prompt, not this step.
		_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventSchemaMismatch, map[string]interface{}{
			"prompt_id":  activePrompt.ID,
			"violations": violations,
		})
	}

	method := document.ExtractionMethodSeries
	if doc.StructuredDataGeneric != nil {
		method = document.ExtractionMethodBoth
	}

	_, err = deps.Documents.ConditionalUpdate(ctx, doc.ID, document.StatusSeriesSummarizing, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.
			SetStatus(document.StatusSeriesSummarized).
			SetStructuredData(extraction).
			SetSeriesPromptID(activePrompt.ID).
			SetExtractionMethod(method)
	})
	if err != nil {
		if errors.Is(err, data.ErrConcurrentModification) {
			return benign()
		}
		return fatal(fmt.Errorf("failed to persist series extraction for %s: %w", doc.ID, err))
	}

	_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventSeriesSummarizeCompleted, map[string]interface{}{
		"series_id": sr.ID,
		"prompt_id": activePrompt.ID,
		"version":   activePrompt.Version,
	})
	return advanced()
}

// advanceToSeriesSummarized closes out the step for documents with no
// series to extract against.
func advanceToSeriesSummarized(ctx context.Context, deps *Deps, doc *ent.Document) StepResult {
	_, err := deps.Documents.ConditionalUpdate(ctx, doc.ID, document.StatusSeriesSummarizing, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.SetStatus(document.StatusSeriesSummarized)
	})
	if err != nil {
		if errors.Is(err, data.ErrConcurrentModification) {
			return benign()
		}
		return fatal(err)
	}
	return advanced()
}

// ensureSeriesPrompt returns the series' active prompt, creating version 1
// under series_prompt_lock if no prompt exists yet. Exactly one creator
// wins; every other worker re-reads the winner's row.
func ensureSeriesPrompt(ctx context.Context, deps *Deps, doc *ent.Document, sr *ent.Series) (*ent.Prompt, error) {
	if sr.ActivePromptID != nil {
		return deps.Prompts.Get(ctx, *sr.ActivePromptID)
	}

	held, err := deps.Locks.Acquire(ctx, locks.SeriesPromptKey(sr.ID))
	if err != nil {
		return nil, err
	}
	defer func() { _ = held.Release(ctx) }()

	// Re-read inside the lock; a concurrent worker may have created the
	// prompt while we waited.
	fresh, err := deps.Series.Get(ctx, sr.ID)
	if err != nil {
		return nil, err
	}
	if fresh.ActivePromptID != nil {
		return deps.Prompts.Get(ctx, *fresh.ActivePromptID)
	}

	built, err := buildSeriesPrompt(ctx, deps, doc, sr)
	if err != nil {
		return nil, err
	}

	created, err := deps.Prompts.CreateInitial(ctx, data.CreatePromptParams{
		PromptType:          prompt.PromptTypeSeriesSummarizer,
		SeriesID:            &sr.ID,
		Text:                built.PromptText,
		CanEvolve:           true,
		ScoreCeiling:        deps.DefaultScoreCeiling,
		RegeneratesOnUpdate: true,
		PerformanceMetrics: map[string]interface{}{
			schemaDefinitionKey: built.SchemaDefinition,
		},
	})
	if err != nil {
		return nil, err
	}

	won, err := deps.Series.SetActivePromptIfUnset(ctx, sr.ID, created.ID)
	if err != nil {
		return nil, err
	}
	if !won {
		// Defense in depth: the lock should make this unreachable, but if
		// another prompt won, use it and leave ours inactive history.
		fresh, err := deps.Series.Get(ctx, sr.ID)
		if err != nil {
			return nil, err
		}
		if fresh.ActivePromptID != nil {
			return deps.Prompts.Get(ctx, *fresh.ActivePromptID)
		}
		return nil, fmt.Errorf("series %s active prompt vanished during creation", sr.ID)
	}

	_ = deps.Events.Series(ctx, sr.ID, events.CategoryPrompt, events.EventSeriesSummarizeStarted, map[string]interface{}{
		"prompt_id": created.ID,
		"fields":    len(built.SchemaDefinition),
	})
	return created, nil
}

// seriesPromptSpec is the prompt builder's output.
type seriesPromptSpec struct {
	PromptText       string                 `json:"prompt_text"`
	SchemaDefinition map[string]interface{} `json:"schema_definition"`
}

func buildSeriesPrompt(ctx context.Context, deps *Deps, doc *ent.Document, sr *ent.Series) (*seriesPromptSpec, error) {
	text := ""
	if doc.ExtractedText != nil {
		text = *doc.ExtractedText
	}
	if len(text) > sampleTextLimit {
		text = text[:sampleTextLimit]
	}

	input := map[string]interface{}{
		"entity":       sr.Entity,
		"series_type":  sr.SeriesType,
		"sample_text":  text,
		"generic_data": doc.StructuredDataGeneric,
	}
	encoded, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode prompt builder input: %w", err)
	}

	result, err := deps.callLLM(ctx, nil, &sr.ID, seriesPromptBuilderText, string(encoded), adapters.InvokeOptions{ParseJSON: true})
	if err != nil {
		return nil, err
	}
	if result.ParsedJSON == nil {
		return nil, fmt.Errorf("%w: prompt builder did not return structured output", adapters.ErrFatal)
	}

	raw, err := json.Marshal(result.ParsedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to re-marshal prompt builder output: %w", err)
	}
	var spec seriesPromptSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode prompt builder output: %w", err)
	}
	if spec.PromptText == "" || len(spec.SchemaDefinition) == 0 {
		return nil, fmt.Errorf("%w: prompt builder returned empty prompt_text or schema_definition", adapters.ErrFatal)
	}
	return &spec, nil
}

// extractWithSeriesPrompt runs one series extraction and validates it
// against the prompt's declared schema. Violations are reported, never
// enforced: unknown keys are preserved, missing or mistyped ones flagged.
// Shared by the series-summarize step and the regeneration worker.
func extractWithSeriesPrompt(ctx context.Context, deps *Deps, doc *ent.Document, activePrompt *ent.Prompt) (map[string]interface{}, []string, error) {
	text := ""
	if doc.ExtractedText != nil {
		text = *doc.ExtractedText
	}

	result, err := deps.callLLM(ctx, &doc.ID, nil, activePrompt.PromptText, text, adapters.InvokeOptions{ParseJSON: true})
	if err != nil {
		return nil, nil, err
	}
	if result.ParsedJSON == nil {
		return nil, nil, fmt.Errorf("%w: series extraction did not return structured output", adapters.ErrFatal)
	}

	violations := validateAgainstSchema(result.ParsedJSON, schemaDefinition(activePrompt))
	return result.ParsedJSON, violations, nil
}

// schemaDefinition pulls the declared schema out of a series prompt's
// performance_metrics, nil when absent.
func schemaDefinition(p *ent.Prompt) map[string]interface{} {
	if p.PerformanceMetrics == nil {
		return nil
	}
	def, ok := p.PerformanceMetrics[schemaDefinitionKey].(map[string]interface{})
	if !ok {
		return nil
	}
	return def
}

// validateAgainstSchema checks data against a {field: type-name} schema.
// Returns human-readable violations: missing fields and type mismatches.
// Unknown keys in data are allowed (they are preserved downstream).
func validateAgainstSchema(data map[string]interface{}, schema map[string]interface{}) []string {
	var violations []string
	for field, wantRaw := range schema {
		want, ok := wantRaw.(string)
		if !ok {
			continue
		}
		value, present := data[field]
		if !present || value == nil {
			violations = append(violations, fmt.Sprintf("missing field %q", field))
			continue
		}
		if got := jsonTypeName(value); got != want {
			violations = append(violations, fmt.Sprintf("field %q: expected %s, got %s", field, want, got))
		}
	}
	return violations
}

func jsonTypeName(v interface{}) string {
	switch v.(type) {
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	case []interface{}:
		return "array"
	case map[string]interface{}:
		return "object"
	default:
		return "unknown"
	}
}
