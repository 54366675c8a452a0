package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/prompt"
	"github.com/sirmick/alfrd/ent/tag"
	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
	"github.com/sirmick/alfrd/internal/locks"
)

// detectOutput is what the series detector's ParsedJSON decodes into.
type detectOutput struct {
	Entity     string                 `json:"entity"`
	SeriesType string                 `json:"series_type"`
	Frequency  *string                `json:"frequency"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// File runs the summarized -> filed transition: it asks the series
// detector which recurring series the document belongs to, creates or
// reuses that series under an advisory lock, attaches the canonical
// series tag, and marks the matching tag-signature File outdated so the
// file-summary step regenerates it.
func File(ctx context.Context, deps *Deps, doc *ent.Document) StepResult {
	detectorPrompt, err := deps.Prompts.GetActiveGlobal(ctx, prompt.PromptTypeSeriesDetector)
	if err != nil {
		if errors.Is(err, data.ErrNotFound) {
			return fatal(fmt.Errorf("no active series_detector prompt configured"))
		}
		return fatal(err)
	}

	userText, err := buildDetectInput(ctx, deps, doc)
	if err != nil {
		return fatal(err)
	}

	result, err := deps.callLLM(ctx, &doc.ID, nil, detectorPrompt.PromptText, userText, adapters.InvokeOptions{ParseJSON: true})
	if err != nil {
		return classifyAdapterError(err)
	}

	out, err := decodeDetectOutput(result)
	if err != nil {
		if _, ferr := deps.Documents.MarkFailed(ctx, doc.ID, err.Error()); ferr != nil {
			return fatal(ferr)
		}
		_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventFileFailed, map[string]interface{}{"reason": err.Error()})
		return fatal(err)
	}

	sr, err := lookupOrCreateSeries(ctx, deps, doc, out)
	if err != nil {
		if isLockTimeout(err) {
			return deferred(err)
		}
		return fatal(err)
	}

	if err := deps.Series.AddDocument(ctx, sr.ID, doc.ID); err != nil {
		return fatal(err)
	}

	// Canonical series tag: its signature is what aggregates the series'
	// documents into one File.
	seriesTag := "series:" + slug(sr.Entity)
	t, err := deps.Tags.GetOrCreate(ctx, seriesTag, tag.CreatedBySystem, nil)
	if err != nil {
		return fatal(err)
	}
	if err := deps.Tags.AttachToDocument(ctx, doc.ID, t.ID); err != nil {
		return fatal(err)
	}

	var userID *string
	if doc.UserID != nil {
		userID = doc.UserID
	}
	f, err := deps.Files.GetOrCreateBySignature(ctx, []string{seriesTag}, userID)
	if err != nil {
		return fatal(err)
	}
	if err := deps.Files.MarkOutdated(ctx, f.ID); err != nil {
		return fatal(err)
	}

	_, err = deps.Documents.ConditionalUpdate(ctx, doc.ID, document.StatusSummarized, func(u *ent.DocumentUpdateOne) *ent.DocumentUpdateOne {
		return u.SetStatus(document.StatusFiled)
	})
	if err != nil {
		if errors.Is(err, data.ErrConcurrentModification) {
			return benign()
		}
		return fatal(fmt.Errorf("failed to persist filing for %s: %w", doc.ID, err))
	}

	_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventFileCompleted, map[string]interface{}{
		"series_id":   sr.ID,
		"entity":      sr.Entity,
		"series_type": sr.SeriesType,
		"file_id":     f.ID,
	})
	return advanced()
}

// lookupOrCreateSeries performs the read-or-create under the per-key
// advisory lock that makes concurrent detection of the same new series
// yield exactly one row.
func lookupOrCreateSeries(ctx context.Context, deps *Deps, doc *ent.Document, out *detectOutput) (*ent.Series, error) {
	entityNorm := strings.ToLower(strings.TrimSpace(out.Entity))
	typeNorm := strings.ToLower(strings.TrimSpace(out.SeriesType))
	userKey := ""
	if doc.UserID != nil {
		userKey = *doc.UserID
	}

	held, err := deps.Locks.Acquire(ctx, locks.SeriesCreateKey(entityNorm, typeNorm, userKey))
	if err != nil {
		return nil, err
	}
	defer func() { _ = held.Release(ctx) }()

	title := fmt.Sprintf("%s %s", out.Entity, strings.ReplaceAll(out.SeriesType, "_", " "))
	sr, err := deps.Series.GetOrCreate(ctx, title, out.Entity, out.SeriesType, doc.UserID)
	if err != nil {
		return nil, err
	}

	if out.Frequency != nil || out.Metadata != nil {
		// Best effort; detection detail is advisory and never blocks filing.
		if err := deps.Series.SetDetectionDetail(ctx, sr.ID, out.Frequency, out.Metadata); err != nil {
			deps.Logger.Warn("failed to record series detection detail", "series_id", sr.ID, "error", err)
		}
	}
	return sr, nil
}

// buildDetectInput assembles the detector context: the document plus the
// existing series catalog, so the model reuses canonical entity names
// instead of minting near-duplicates.
func buildDetectInput(ctx context.Context, deps *Deps, doc *ent.Document) (string, error) {
	limit := deps.SeriesCatalogLimit
	if limit <= 0 {
		limit = 20
	}
	catalog, err := deps.Series.ListTop(ctx, limit)
	if err != nil {
		return "", err
	}

	entries := make([]map[string]interface{}, 0, len(catalog))
	for _, sr := range catalog {
		entry := map[string]interface{}{
			"entity":         sr.Entity,
			"series_type":    sr.SeriesType,
			"document_count": sr.DocumentCount,
		}
		if sr.Frequency != nil {
			entry["frequency"] = *sr.Frequency
		}
		entries = append(entries, entry)
	}

	text := ""
	if doc.ExtractedText != nil {
		text = *doc.ExtractedText
	}
	docType := ""
	if doc.DocumentType != nil {
		docType = *doc.DocumentType
	}

	input := map[string]interface{}{
		"document_type":   docType,
		"extracted_text":  text,
		"generic_data":    doc.StructuredDataGeneric,
		"existing_series": entries,
	}
	encoded, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode detector input: %w", err)
	}
	return string(encoded), nil
}

func decodeDetectOutput(result *adapters.InvokeResult) (*detectOutput, error) {
	if result.ParsedJSON == nil {
		return nil, fmt.Errorf("series detector did not return structured output")
	}
	raw, err := json.Marshal(result.ParsedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to re-marshal detector output: %w", err)
	}
	var out detectOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode detector output: %w", err)
	}
	if strings.TrimSpace(out.Entity) == "" || strings.TrimSpace(out.SeriesType) == "" {
		return nil, fmt.Errorf("series detector returned empty entity or series_type")
	}
	return &out, nil
}

// slug lowercases an entity name and collapses every non-alphanumeric run
// to a single dash, producing the canonical series tag suffix.
func slug(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
