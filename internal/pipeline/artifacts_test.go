package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirmick/alfrd/internal/adapters"
)

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	docID := "00000000-0000-0000-0000-000000000001"

	result := &adapters.ExtractResult{
		FullText:      "Pacific Gas & Electric\nAmount due: $142.75",
		DocumentCount: 1,
		AvgConfidence: 0.97,
		Pages: []adapters.FilePages{
			{
				File: "bill.jpg",
				Blocks: []adapters.Block{
					{Type: "PAGE", Text: "Pacific Gas & Electric", Confidence: 0.97, Width: 1, Height: 1},
				},
			},
		},
	}

	require.NoError(t, writeArtifacts(filepath.Join(dir, "artifacts"), docID, result))

	text, err := os.ReadFile(filepath.Join(dir, "artifacts", docID+".txt"))
	require.NoError(t, err)
	assert.Equal(t, result.FullText, string(text))

	raw, err := os.ReadFile(filepath.Join(dir, "artifacts", docID+"_llm.json"))
	require.NoError(t, err)
	var blocks map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &blocks))
	assert.Equal(t, float64(1), blocks["document_count"])
	assert.Equal(t, 0.97, blocks["avg_confidence"])

	// Re-running overwrites rather than failing.
	require.NoError(t, writeArtifacts(filepath.Join(dir, "artifacts"), docID, result))
}
