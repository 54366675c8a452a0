// Package adapters defines the abstract OCR and LLM boundaries the
// pipeline calls through. Neither interface exposes vendor-specific
// types; concrete implementations live in this package (a dev/mock pair
// for local runs plus a gRPC-backed production adapter) and are selected
// at startup by config, never by the pipeline itself.
package adapters

import (
	"context"
	"errors"
)

// ErrTransient marks an adapter failure the caller should retry within
// its existing retry budget (network blip, throttling, timeout).
var ErrTransient = errors.New("adapter: transient error")

// ErrFatal marks an adapter failure that will not succeed on retry
// (malformed response, auth failure, schema violation).
var ErrFatal = errors.New("adapter: fatal error")

// Block is one OCR-detected region: a page, line, or word, with its
// bounding geometry and confidence.
type Block struct {
	Type       string // "PAGE", "LINE", or "WORD"
	Text       string
	Confidence float64
	Left       float64
	Top        float64
	Width      float64
	Height     float64
}

// FilePages holds the OCR blocks detected in a single source file.
type FilePages struct {
	File   string
	Blocks []Block
}

// ExtractResult is the full text and structured layout produced by OCR
// across every file in a document's folder.
type ExtractResult struct {
	FullText      string
	Pages         []FilePages
	DocumentCount int
	AvgConfidence float64
}

// OCR extracts text and layout from a folder of document images/PDFs.
type OCR interface {
	Extract(ctx context.Context, folder string) (*ExtractResult, error)
}
