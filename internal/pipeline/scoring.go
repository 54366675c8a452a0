package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/prompt"
	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/events"
	"github.com/sirmick/alfrd/internal/locks"
)

// Scoring runs in the background and must never break the lifecycle:
// every scorer here swallows its errors after logging them. The only
// side effects are prompt performance accounting and, when the evolution
// gate opens, a new prompt version.

// scoreOutput is the scorer prompt's contract.
type scoreOutput struct {
	Score          float64 `json:"score"`
	ImprovedPrompt *string `json:"improved_prompt"`
}

// ScoreClassification scores the classifier output for a document and
// feeds the classifier prompt family's evolution gate.
func ScoreClassification(ctx context.Context, deps *Deps, doc *ent.Document) {
	scored, err := deps.Prompts.GetActiveGlobal(ctx, prompt.PromptTypeClassifier)
	if err != nil {
		deps.Logger.Warn("classification scoring skipped", "document_id", doc.ID, "error", err)
		return
	}

	docType := ""
	if doc.DocumentType != nil {
		docType = *doc.DocumentType
	}
	output := map[string]interface{}{"document_type": docType}

	scoreAndMaybeEvolve(ctx, deps, doc, scored, output, events.EventScoreClassificationDone)
}

// ScoreSummary scores the generic extraction and feeds the per-type
// summarizer family's evolution gate.
func ScoreSummary(ctx context.Context, deps *Deps, doc *ent.Document) {
	if doc.DocumentType == nil {
		return
	}
	scored, err := deps.Prompts.GetActiveForDocumentType(ctx, prompt.PromptTypeSummarizer, *doc.DocumentType)
	if err != nil {
		deps.Logger.Warn("summary scoring skipped", "document_id", doc.ID, "error", err)
		return
	}
	scoreAndMaybeEvolve(ctx, deps, doc, scored, doc.StructuredDataGeneric, events.EventScoreSummaryDone)
}

// ScoreSeriesExtraction scores the series-scoped extraction and feeds the
// series prompt's evolution gate; this is the scorer whose evolutions
// trigger series regeneration.
func ScoreSeriesExtraction(ctx context.Context, deps *Deps, doc *ent.Document) {
	if doc.SeriesPromptID == nil {
		return
	}
	scored, err := deps.Prompts.Get(ctx, *doc.SeriesPromptID)
	if err != nil {
		deps.Logger.Warn("series scoring skipped", "document_id", doc.ID, "error", err)
		return
	}
	if !scored.IsActive {
		// The prompt already evolved past this extraction; scoring a
		// retired version would feed the wrong family average.
		return
	}
	scoreAndMaybeEvolve(ctx, deps, doc, scored, doc.StructuredData, events.EventSeriesScoringCompleted)
}

// scoreAndMaybeEvolve runs one scorer call against the prompt that
// produced output, folds the score into the prompt's running average, and
// evolves the family when the gate opens.
func scoreAndMaybeEvolve(ctx context.Context, deps *Deps, doc *ent.Document, scored *ent.Prompt, output map[string]interface{}, doneEvent string) {
	log := deps.Logger.With("document_id", doc.ID, "prompt_id", scored.ID, "prompt_type", scored.PromptType)

	out, err := callScorer(ctx, deps, doc, scored, output)
	if err != nil {
		log.Warn("scorer call failed", "error", err)
		return
	}

	updated, err := deps.Prompts.RecordScore(ctx, scored.ID, out.Score)
	if err != nil {
		log.Warn("failed to record score", "error", err)
		return
	}

	_ = deps.Events.Document(ctx, doc.ID, events.CategoryLifecycle, doneEvent, map[string]interface{}{
		"prompt_id":   scored.ID,
		"score":       out.Score,
		"avg_score":   updated.AvgScore,
		"sample_size": updated.SampleSize,
	})

	if out.ImprovedPrompt == nil || *out.ImprovedPrompt == "" {
		return
	}
	gate := evolutionGate{
		CanEvolve: updated.CanEvolve,
		// The gate compares against the average from before this score,
		// so one outlier cannot lift the average and evolve in one breath.
		AvgScore:     scored.AvgScore,
		ScoreCeiling: updated.ScoreCeiling,
		NewScore:     out.Score,
		Threshold:    deps.PromptUpdateThreshold,
		SampleSize:   updated.SampleSize,
		MinSamples:   deps.MinSamplesForEvolution,
	}
	if reason := gate.blocked(); reason != "" {
		_ = deps.Events.System(ctx, events.CategoryPrompt, events.EventPromptEvolutionSkipped, map[string]interface{}{
			"prompt_id": scored.ID,
			"reason":    reason,
		})
		return
	}

	if err := evolvePrompt(ctx, deps, updated, *out.ImprovedPrompt); err != nil {
		if isLockTimeout(err) {
			log.Info("evolution deferred on lock timeout")
			return
		}
		log.Warn("prompt evolution failed", "error", err)
	}
}

func callScorer(ctx context.Context, deps *Deps, doc *ent.Document, scored *ent.Prompt, output map[string]interface{}) (*scoreOutput, error) {
	scorerPrompt, err := deps.Prompts.GetActiveGlobal(ctx, prompt.PromptTypeScorer)
	if err != nil {
		return nil, fmt.Errorf("no active scorer prompt: %w", err)
	}

	text := ""
	if doc.ExtractedText != nil {
		text = *doc.ExtractedText
	}
	input := map[string]interface{}{
		"instruction_prompt": scored.PromptText,
		"source_text":        text,
		"extraction_output":  output,
	}
	encoded, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scorer input: %w", err)
	}

	result, err := deps.callLLM(ctx, &doc.ID, nil, scorerPrompt.PromptText, string(encoded), adapters.InvokeOptions{ParseJSON: true})
	if err != nil {
		return nil, err
	}
	if result.ParsedJSON == nil {
		return nil, fmt.Errorf("%w: scorer did not return structured output", adapters.ErrFatal)
	}

	raw, err := json.Marshal(result.ParsedJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to re-marshal scorer output: %w", err)
	}
	var out scoreOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode scorer output: %w", err)
	}
	if out.Score < 0 || out.Score > 1 {
		return nil, fmt.Errorf("%w: scorer returned out-of-range score %v", adapters.ErrFatal, out.Score)
	}
	return &out, nil
}

// evolutionGate holds the inputs to the should-evolve decision.
type evolutionGate struct {
	CanEvolve    bool
	AvgScore     *float64
	ScoreCeiling float64
	NewScore     float64
	Threshold    float64
	SampleSize   int
	MinSamples   int
}

// blocked returns the reason evolution must not proceed, or "" when the
// gate is open. The ceiling check uses the family's running average from
// before this score, so a single outlier cannot both lift the average
// past the ceiling and evolve in the same breath.
func (g evolutionGate) blocked() string {
	if !g.CanEvolve {
		return "prompt is static"
	}
	if g.SampleSize < g.MinSamples {
		return fmt.Sprintf("sample size %d below minimum %d", g.SampleSize, g.MinSamples)
	}
	avg := 0.0
	if g.AvgScore != nil {
		avg = *g.AvgScore
	}
	if avg >= g.ScoreCeiling {
		return fmt.Sprintf("average %.3f at or above ceiling %.3f", avg, g.ScoreCeiling)
	}
	if g.NewScore <= avg+g.Threshold {
		return fmt.Sprintf("score %.3f does not exceed average %.3f by more than %.3f", g.NewScore, avg, g.Threshold)
	}
	return ""
}

// evolvePrompt archives the current version and activates the improved
// text under the family's advisory lock; for series prompts it also
// repoints the series and flags regeneration.
func evolvePrompt(ctx context.Context, deps *Deps, current *ent.Prompt, newText string) error {
	lockKey := familyLockKey(current)
	held, err := deps.Locks.Acquire(ctx, lockKey)
	if err != nil {
		return err
	}
	defer func() { _ = held.Release(ctx) }()

	// Re-read under the lock: a concurrent scorer may have already
	// evolved this family, in which case this score loses.
	fresh, err := deps.Prompts.Get(ctx, current.ID)
	if err != nil {
		return err
	}
	if !fresh.IsActive {
		return nil
	}

	next, err := deps.Prompts.Evolve(ctx, fresh, newText)
	if err != nil {
		return err
	}

	if next.PromptType == prompt.PromptTypeSeriesSummarizer && next.SeriesID != nil {
		if err := deps.Series.UpdateActivePrompt(ctx, *next.SeriesID, next.ID); err != nil {
			return err
		}
	}

	docType := ""
	if next.DocumentType != nil {
		docType = *next.DocumentType
	} else if next.SeriesID != nil {
		docType = "series:" + *next.SeriesID
	}
	_ = deps.Events.System(ctx, events.CategoryPrompt, events.EventPromptEvolved, map[string]interface{}{
		"prompt_type":  next.PromptType,
		"family":       docType,
		"from_version": fresh.Version,
		"to_version":   next.Version,
		"prompt_id":    next.ID,
	})
	deps.Notify.PromptEvolved(ctx, string(next.PromptType), docType, fresh.Version, next.Version)
	return nil
}

func familyLockKey(p *ent.Prompt) string {
	if p.PromptType == prompt.PromptTypeSeriesSummarizer && p.SeriesID != nil {
		return locks.SeriesPromptKey(*p.SeriesID)
	}
	docType := ""
	if p.DocumentType != nil {
		docType = *p.DocumentType
	}
	return locks.PromptFamilyKey(string(p.PromptType), docType)
}
