package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/prompt"
	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
)

// fileSummaryOutput is the file_summarizer prompt's contract.
type fileSummaryOutput struct {
	Summary  string                 `json:"summary"`
	Metadata map[string]interface{} `json:"metadata"`
}

// GenerateFileSummary runs one file-summary pass for a claimed file
// (status generating or regenerating): recompute membership by tag
// intersection, summarize the aggregated corpus, and persist the result.
func GenerateFileSummary(ctx context.Context, deps *Deps, f *ent.File) StepResult {
	docs, err := deps.Files.DocumentsMatchingTags(ctx, f.Tags)
	if err != nil {
		return fatal(err)
	}

	if err := deps.Files.AttachDocuments(ctx, f.ID, documentIDs(docs)); err != nil {
		return fatal(err)
	}

	if len(docs) == 0 {
		// A file whose tags match nothing yet is still generated, just empty;
		// the next matching document marks it outdated again.
		if _, err := deps.Files.MarkGenerated(ctx, f.ID, data.GeneratedSummary{
			SummaryMetadata: map[string]interface{}{},
		}); err != nil {
			return fatal(err)
		}
		return advanced()
	}

	summarizerPrompt, err := deps.Prompts.GetActiveGlobal(ctx, prompt.PromptTypeFileSummarizer)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return fatal(fmt.Errorf("no active file_summarizer prompt configured"))
		}
		return fatal(err)
	}

	userText, err := buildFileSummaryInput(f, docs)
	if err != nil {
		return fatal(err)
	}

	result, err := deps.callLLM(ctx, nil, nil, summarizerPrompt.PromptText, userText, adapters.InvokeOptions{ParseJSON: true})
	if err != nil {
		if errors.Is(err, adapters.ErrTransient) {
			return retryable(err)
		}
		if _, ferr := deps.Files.MarkFailed(ctx, f.ID, err.Error()); ferr != nil {
			return fatal(ferr)
		}
		_ = deps.Events.System(ctx, events.CategoryLifecycle, events.EventFileSummaryFailed, map[string]interface{}{
			"file_id": f.ID,
			"reason":  err.Error(),
		})
		return fatal(err)
	}

	out, err := decodeFileSummaryOutput(result)
	if err != nil {
		if _, ferr := deps.Files.MarkFailed(ctx, f.ID, err.Error()); ferr != nil {
			return fatal(ferr)
		}
		_ = deps.Events.System(ctx, events.CategoryLifecycle, events.EventFileSummaryFailed, map[string]interface{}{
			"file_id": f.ID,
			"reason":  err.Error(),
		})
		return fatal(err)
	}

	first, last := documentDateRange(docs)
	if _, err := deps.Files.MarkGenerated(ctx, f.ID, data.GeneratedSummary{
		SummaryText:       out.Summary,
		SummaryMetadata:   out.Metadata,
		DocumentCount:     len(docs),
		FirstDocumentDate: first,
		LastDocumentDate:  last,
		PromptVersion:     &summarizerPrompt.ID,
	}); err != nil {
		return fatal(err)
	}

	_ = deps.Events.System(ctx, events.CategoryLifecycle, events.EventFileSummaryCompleted, map[string]interface{}{
		"file_id":        f.ID,
		"document_count": len(docs),
		"tag_signature":  f.TagSignature,
	})
	return advanced()
}

func documentIDs(docs []*ent.Document) []string {
	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids
}

// documentDateRange returns the oldest and newest creation times across
// docs (which arrive newest first).
func documentDateRange(docs []*ent.Document) (first, last *time.Time) {
	if len(docs) == 0 {
		return nil, nil
	}
	newest := docs[0].CreatedAt
	oldest := docs[len(docs)-1].CreatedAt
	return &oldest, &newest
}

// buildFileSummaryInput aggregates the corpus shown to the summarizer,
// newest documents first.
func buildFileSummaryInput(f *ent.File, docs []*ent.Document) (string, error) {
	entries := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		entry := map[string]interface{}{
			"created_at": d.CreatedAt.Format(time.RFC3339),
		}
		if d.DocumentType != nil {
			entry["document_type"] = *d.DocumentType
		}
		if d.ExtractedText != nil {
			entry["text"] = *d.ExtractedText
		}
		if d.StructuredData != nil {
			entry["structured_data"] = d.StructuredData
		} else if d.StructuredDataGeneric != nil {
			entry["structured_data"] = d.StructuredDataGeneric
		}
		entries = append(entries, entry)
	}

	input := map[string]interface{}{
		"tags":      f.Tags,
		"documents": entries,
	}
	encoded, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode file summary input: %w", err)
	}
	return string(encoded), nil
}

func decodeFileSummaryOutput(result *adapters.InvokeResult) (*fileSummaryOutput, error) {
	if result.ParsedJSON == nil {
		return nil, fmt.Errorf("file summarizer did not return structured output")
	}
	raw, err := json.Marshal(result.ParsedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to re-marshal file summary output: %w", err)
	}
	var out fileSummaryOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode file summary output: %w", err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("file summarizer returned empty summary")
	}
	if out.Metadata == nil {
		out.Metadata = map[string]interface{}{}
	}
	return &out, nil
}
