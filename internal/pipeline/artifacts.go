package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirmick/alfrd/internal/adapters"
)

// writeArtifacts persists the OCR output next to the database record:
// {doc_id}.txt holds the full text, {doc_id}_llm.json the per-file block
// layout. Both writes are idempotent — re-running OCR for the same
// document overwrites the previous artifacts.
func writeArtifacts(dir, documentID string, result *adapters.ExtractResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create artifacts directory %s: %w", dir, err)
	}

	textPath := filepath.Join(dir, documentID+".txt")
	if err := os.WriteFile(textPath, []byte(result.FullText), 0o644); err != nil {
		return fmt.Errorf("failed to write text artifact %s: %w", textPath, err)
	}

	blocks, err := json.MarshalIndent(map[string]interface{}{
		"document_count": result.DocumentCount,
		"avg_confidence": result.AvgConfidence,
		"pages":          result.Pages,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode blocks artifact: %w", err)
	}

	blocksPath := filepath.Join(dir, documentID+"_llm.json")
	if err := os.WriteFile(blocksPath, blocks, 0o644); err != nil {
		return fmt.Errorf("failed to write blocks artifact %s: %w", blocksPath, err)
	}
	return nil
}
