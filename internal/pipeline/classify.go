package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"

	"context"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/prompt"
	"github.com/sirmick/alfrd/ent/tag"
	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
)

// classifyOutput is what the classifier prompt's ParsedJSON is expected to
// decode into. Tags is the model's own suggestion list; it is independent
// of the auto-tag rule, which always fires off DocumentType regardless of
// what the model puts in Tags.
type classifyOutput struct {
	DocumentType string   `json:"document_type"`
	Confidence   float64  `json:"confidence"`
	Reasoning    string   `json:"reasoning"`
	Tags         []string `json:"tags"`
}

// Classify runs the ocr_completed -> classified transition. It asks the
// classifier prompt to assign a document_type (from the known catalog or
// a new value), applies the auto-tag rule, attaches any LLM-suggested and
// user-supplied tags, and persists the result.
func Classify(ctx context.Context, deps *Deps, doc *ent.Document) StepResult {
	activePrompt, err := deps.Prompts.GetActiveGlobal(ctx, prompt.PromptTypeClassifier)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return fatal(fmt.Errorf("no active classifier prompt configured"))
		}
		return fatal(err)
	}

	userText := buildClassifyInput(deps, doc)

	result, err := deps.callLLM(ctx, &doc.ID, nil, activePrompt.PromptText, userText, adapters.InvokeOptions{ParseJSON: true})
	if err != nil {
		return classifyAdapterError(err)
	}

	out, err := decodeClassifyOutput(result)
	if err != nil {
		if _, ferr := deps.Documents.MarkFailed(ctx, doc.ID, err.Error()); ferr != nil {
			return fatal(ferr)
		}
		_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventClassifyFailed, map[string]interface{}{"reason": err.Error()})
		return fatal(err)
	}

	known := false
	for _, t := range deps.Types.Types() {
		if t == out.DocumentType {
			known = true
			break
		}
	}
	if !known {
		_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventClassifyTypeSuggested, map[string]interface{}{
			"document_type": out.DocumentType,
			"confidence":    out.Confidence,
		})
	}

	if err := applyAutoTag(ctx, deps, doc.ID, out.DocumentType); err != nil {
		return fatal(err)
	}
	for _, name := range out.Tags {
		if err := attachSuggestedTag(ctx, deps, doc.ID, name, tag.CreatedByLlm); err != nil {
			return fatal(err)
		}
	}

	_, err = deps.Documents.ConditionalUpdate(ctx, doc.ID, document.StatusOcrCompleted, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.
			SetStatus(document.StatusClassified).
			SetDocumentType(out.DocumentType)
	})
	if err != nil {
		if errors.Is(err, data.ErrConcurrentModification) {
			return benign()
		}
		return fatal(fmt.Errorf("failed to persist classification for %s: %w", doc.ID, err))
	}

	_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventClassifyCompleted, map[string]interface{}{
		"document_type": out.DocumentType,
		"confidence":    out.Confidence,
		"reasoning":     out.Reasoning,
	})
	return advanced()
}

// buildClassifyInput hands the model the extracted text plus the known
// document-type catalog and, for each known type, its most common tag
// combinations, so the model can match existing taxonomy instead of
// inventing a new type for every call.
func buildClassifyInput(deps *Deps, doc *ent.Document) string {
	text := ""
	if doc.ExtractedText != nil {
		text = *doc.ExtractedText
	}

	input := map[string]interface{}{
		"extracted_text": text,
		"known_types":    deps.Types.Types(),
	}

	typeCatalog := make(map[string][]map[string]interface{})
	for _, t := range deps.Types.Types() {
		for _, combo := range deps.Types.TopTagCombinations(t) {
			typeCatalog[t] = append(typeCatalog[t], map[string]interface{}{
				"tags":  combo.Tags,
				"count": combo.Count,
			})
		}
	}
	input["tag_combinations_by_type"] = typeCatalog

	encoded, err := json.Marshal(input)
	if err != nil {
		return text
	}
	return string(encoded)
}

func decodeClassifyOutput(result *adapters.InvokeResult) (*classifyOutput, error) {
	if result.ParsedJSON == nil {
		return nil, fmt.Errorf("classifier did not return structured output")
	}
	raw, err := json.Marshal(result.ParsedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to re-marshal classifier output: %w", err)
	}
	var out classifyOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode classifier output: %w", err)
	}
	if out.DocumentType == "" {
		return nil, fmt.Errorf("classifier returned empty document_type")
	}
	return &out, nil
}

// applyAutoTag upserts lower(documentType) as a system tag and attaches it
// to the document, independent of whatever tags the model suggested.
func applyAutoTag(ctx context.Context, deps *Deps, documentID, documentType string) error {
	return attachSuggestedTag(ctx, deps, documentID, documentType, tag.CreatedBySystem)
}

func attachSuggestedTag(ctx context.Context, deps *Deps, documentID, name string, createdBy tag.CreatedBy) error {
	if name == "" {
		return nil
	}
	t, err := deps.Tags.GetOrCreate(ctx, name, createdBy, nil)
	if err != nil {
		return fmt.Errorf("failed to get or create tag %q: %w", name, err)
	}
	if err := deps.Tags.AttachToDocument(ctx, documentID, t.ID); err != nil {
		return fmt.Errorf("failed to attach tag %q to document %s: %w", name, documentID, err)
	}
	return nil
}
