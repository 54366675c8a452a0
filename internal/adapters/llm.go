package adapters

import "context"

// InvokeOptions carries the knobs a step may set on an LLM call. A step
// asking for structured output sets ParseJSON so the adapter knows to
// populate ParsedJSON instead of (or alongside) Text.
type InvokeOptions struct {
	Model       string
	Temperature *float32
	MaxTokens   *int32
	ParseJSON   bool
}

// InvokeResult is one LLM call's output plus the accounting fields every
// llm_request event records.
type InvokeResult struct {
	Text           string
	ParsedJSON     map[string]interface{}
	RequestTokens  int
	ResponseTokens int
	LatencyMS      int64
	ModelID        string
}

// LLM performs a single prompt/response inference call. promptText is the
// system/instruction prompt for the active prompt row driving this step;
// userText is the document- or series-specific input.
type LLM interface {
	Invoke(ctx context.Context, promptText, userText string, opts InvokeOptions) (*InvokeResult, error)
}
