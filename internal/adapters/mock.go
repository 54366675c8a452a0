package adapters

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// MockOCR returns deterministic, low-confidence text derived from the
// folder name, so local runs and tests exercise the pipeline without a
// real OCR service. One mock page is produced per call; file listing is
// the caller's responsibility.
type MockOCR struct{}

// NewMockOCR constructs a MockOCR.
func NewMockOCR() *MockOCR { return &MockOCR{} }

// Extract synthesizes OCR output for folder without touching a real engine.
func (m *MockOCR) Extract(ctx context.Context, folder string) (*ExtractResult, error) {
	if folder == "" {
		return nil, fmt.Errorf("%w: empty folder", ErrFatal)
	}
	name := strings.TrimSuffix(folder[strings.LastIndex(folder, "/")+1:], "/")
	text := fmt.Sprintf("mock extracted text for %s", name)

	return &ExtractResult{
		FullText: text,
		Pages: []FilePages{
			{
				File: name,
				Blocks: []Block{
					{Type: "PAGE", Text: text, Confidence: 0.82, Width: 1, Height: 1},
					{Type: "LINE", Text: text, Confidence: 0.82, Width: 1, Height: 0.05},
				},
			},
		},
		DocumentCount: 1,
		AvgConfidence: 0.82,
	}, nil
}

// MockLLM echoes a canned, deterministic response so classify/summarize/
// score/series steps can be exercised end to end without a live model.
type MockLLM struct{}

// NewMockLLM constructs a MockLLM.
func NewMockLLM() *MockLLM { return &MockLLM{} }

// Invoke fabricates a plausible result for opts.ParseJSON, or echoes userText otherwise.
func (m *MockLLM) Invoke(ctx context.Context, promptText, userText string, opts InvokeOptions) (*InvokeResult, error) {
	start := time.Now()
	result := &InvokeResult{
		RequestTokens:  len(strings.Fields(promptText)) + len(strings.Fields(userText)),
		ResponseTokens: 16,
		ModelID:        "mock-llm-v1",
	}
	if opts.Model != "" {
		result.ModelID = opts.Model
	}

	if opts.ParseJSON {
		result.ParsedJSON = map[string]interface{}{
			"document_type": "unclassified",
			"confidence":    0.5,
			"reasoning":     "mock adapter: no live model configured",
			"tags":          []interface{}{},
		}
	} else {
		result.Text = fmt.Sprintf("mock response to: %s", strings.TrimSpace(userText))
	}

	result.LatencyMS = time.Since(start).Milliseconds()
	return result, nil
}
