package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/prompt"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/locks"
)

// Built-in prompt texts seeded on first startup. They are deliberately
// plain: the interesting versions are the ones evolution produces, and
// those live in the prompts table, not here.
const (
	defaultClassifierText = `You classify scanned personal documents. You are given the extracted text of a document, the catalog of known document types, and the most common tag combinations seen per type. Respond with JSON: {"document_type": string, "confidence": number between 0 and 1, "reasoning": string, "tags": [string]}. Prefer a known document_type when one fits; only introduce a new type when none does. Suggest 2-5 short lowercase tags.`

	defaultSeriesDetectorText = `You detect recurring document series. You are given a document's type, extracted text, generic extraction, and the catalog of existing series (entity, series_type, frequency). Respond with JSON: {"entity": string, "series_type": string, "frequency": string or null, "metadata": object}. Reuse the exact entity spelling from the catalog when the document belongs to an existing series; introduce a new entity only for a genuinely new source.`

	defaultFileSummarizerText = `You summarize a collection of related personal documents. You are given the documents' text and extractions, newest first. Respond with JSON: {"summary": string, "metadata": object}. The summary should cover the collection's span, totals, and notable changes over time.`

	defaultScorerText = `You grade an extraction against its source text. You are given the instruction prompt that produced it, the source document text, and the extraction output. Respond with JSON: {"score": number between 0 and 1, "improved_prompt": string or null}. Score completeness and faithfulness. Propose improved_prompt only when a concrete instruction change would clearly raise the score; otherwise return null.`

	// summarizerTextTemplate seeds the per-document-type generic
	// summarizer family the first time a new type is seen.
	summarizerTextTemplate = `You extract structured data from a document of type %q. You are given the document's extracted text. Respond with JSON: {"summary": string, "data": object}. The summary is one or two sentences; data holds every field a person filing this document would care about (dates, amounts, account identifiers, parties), with lowercase snake_case keys.`
)

// EnsureDefaultPrompts seeds the global prompt families (classifier,
// series detector, file summarizer, scorer) if they do not exist yet.
// Called once at orchestrator startup; per-document-type summarizer and
// per-series prompts are created lazily by their steps instead.
func EnsureDefaultPrompts(ctx context.Context, deps *Deps) error {
	seeds := []data.CreatePromptParams{
		{
			PromptType:   prompt.PromptTypeClassifier,
			Text:         defaultClassifierText,
			CanEvolve:    true,
			ScoreCeiling: deps.DefaultScoreCeiling,
		},
		{
			PromptType:   prompt.PromptTypeSeriesDetector,
			Text:         defaultSeriesDetectorText,
			CanEvolve:    false,
			ScoreCeiling: 1.0,
		},
		{
			PromptType:   prompt.PromptTypeFileSummarizer,
			Text:         defaultFileSummarizerText,
			CanEvolve:    false,
			ScoreCeiling: 1.0,
		},
		{
			PromptType:   prompt.PromptTypeScorer,
			Text:         defaultScorerText,
			CanEvolve:    false,
			ScoreCeiling: 1.0,
		},
	}

	for _, seed := range seeds {
		_, err := deps.Prompts.GetActiveGlobal(ctx, seed.PromptType)
		if err == nil {
			continue
		}
		if !errors.Is(err, data.ErrNotFound) {
			return fmt.Errorf("failed to check for active %s prompt: %w", seed.PromptType, err)
		}
		if _, err := deps.Prompts.CreateInitial(ctx, seed); err != nil {
			return fmt.Errorf("failed to seed %s prompt: %w", seed.PromptType, err)
		}
		deps.Logger.Info("seeded default prompt", "prompt_type", seed.PromptType)
	}
	return nil
}

// ensureSummarizerPrompt returns the active generic summarizer for a
// document type, creating the family's first version under the prompt
// family lock the first time the type is seen.
func ensureSummarizerPrompt(ctx context.Context, deps *Deps, documentType string) (*ent.Prompt, error) {
	active, err := deps.Prompts.GetActiveForDocumentType(ctx, prompt.PromptTypeSummarizer, documentType)
	if err == nil {
		return active, nil
	}
	if !errors.Is(err, data.ErrNotFound) {
		return nil, err
	}

	held, err := deps.Locks.Acquire(ctx, locks.PromptFamilyKey(string(prompt.PromptTypeSummarizer), documentType))
	if err != nil {
		return nil, err
	}
	defer func() { _ = held.Release(ctx) }()

	// Re-check inside the lock: another worker may have seeded the family
	// while we waited.
	active, err = deps.Prompts.GetActiveForDocumentType(ctx, prompt.PromptTypeSummarizer, documentType)
	if err == nil {
		return active, nil
	}
	if !errors.Is(err, data.ErrNotFound) {
		return nil, err
	}

	return deps.Prompts.CreateInitial(ctx, data.CreatePromptParams{
		PromptType:   prompt.PromptTypeSummarizer,
		DocumentType: &documentType,
		Text:         fmt.Sprintf(summarizerTextTemplate, documentType),
		CanEvolve:    true,
		ScoreCeiling: deps.DefaultScoreCeiling,
	})
}
