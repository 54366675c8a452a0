package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
)

// summarizeOutput is the generic-extraction contract: a short human
// summary plus an open-ended data object that becomes
// structured_data_generic.
type summarizeOutput struct {
	Summary string                 `json:"summary"`
	Data    map[string]interface{} `json:"data"`
}

// Summarize runs the classified -> summarized transition. It resolves (or
// lazily seeds) the generic summarizer prompt for the document's type and
// writes structured_data_generic exactly once.
func Summarize(ctx context.Context, deps *Deps, doc *ent.Document) StepResult {
	if doc.DocumentType == nil {
		return fatal(fmt.Errorf("document %s reached summarize without a document_type", doc.ID))
	}

	activePrompt, err := ensureSummarizerPrompt(ctx, deps, *doc.DocumentType)
	if err != nil {
		if isLockTimeout(err) {
			return deferred(err)
		}
		return fatal(err)
	}

	text := ""
	if doc.ExtractedText != nil {
		text = *doc.ExtractedText
	}

	result, err := deps.callLLM(ctx, &doc.ID, nil, activePrompt.PromptText, text, adapters.InvokeOptions{ParseJSON: true})
	if err != nil {
		return classifyAdapterError(err)
	}

	out, err := decodeSummarizeOutput(result)
	if err != nil {
		if _, ferr := deps.Documents.MarkFailed(ctx, doc.ID, err.Error()); ferr != nil {
			return fatal(ferr)
		}
		_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventSummarizeFailed, map[string]interface{}{"reason": err.Error()})
		return fatal(err)
	}

	generic := out.Data
	if out.Summary != "" {
		generic["summary"] = out.Summary
	}

	_, err = deps.Documents.ConditionalUpdate(ctx, doc.ID, document.StatusClassified, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.
			SetStatus(document.StatusSummarized).
			SetStructuredDataGeneric(generic).
			SetExtractionMethod(document.ExtractionMethodGeneric)
	})
	if err != nil {
		if errors.Is(err, data.ErrConcurrentModification) {
			return benign()
		}
		return fatal(fmt.Errorf("failed to persist generic extraction for %s: %w", doc.ID, err))
	}

	_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventSummarizeCompleted, map[string]interface{}{
		"summary":   out.Summary,
		"prompt_id": activePrompt.ID,
		"keys":      len(out.Data),
	})
	return advanced()
}

func decodeSummarizeOutput(result *adapters.InvokeResult) (*summarizeOutput, error) {
	if result.ParsedJSON == nil {
		return nil, fmt.Errorf("summarizer did not return structured output")
	}
	raw, err := json.Marshal(result.ParsedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to re-marshal summarizer output: %w", err)
	}
	var out summarizeOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode summarizer output: %w", err)
	}
	if out.Data == nil {
		// Some responses put the fields at the top level instead of
		// nesting them under data; fall back to the raw object.
		out.Data = result.ParsedJSON
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("summarizer returned no extraction data")
	}
	return &out, nil
}
