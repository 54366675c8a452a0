package inbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFolder(t *testing.T, root, name, metaJSON string, files ...string) string {
	t.Helper()
	folder := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(folder, 0o755))
	if metaJSON != "" {
		require.NoError(t, os.WriteFile(filepath.Join(folder, "meta.json"), []byte(metaJSON), 0o644))
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(folder, f), []byte("image bytes"), 0o644))
	}
	return folder
}

func TestReadMetaValid(t *testing.T) {
	root := t.TempDir()
	folder := writeFolder(t, root, "bill_x", `{
		"id": "00000000-0000-0000-0000-000000000001",
		"created_at": "2026-07-01T09:30:00Z",
		"documents": [{"file": "bill.jpg", "type": "image", "order": 1}],
		"metadata": {"source": "scanner", "tags": ["bill", "utilities"]}
	}`, "bill.jpg")

	meta, err := ReadMeta(folder)
	require.NoError(t, err)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", meta.ID)
	assert.Equal(t, []string{"bill", "utilities"}, meta.Metadata.Tags)
	require.Len(t, meta.Documents, 1)
	assert.Equal(t, "bill.jpg", meta.Documents[0].File)
}

func TestReadMetaRejectsInvalidFolders(t *testing.T) {
	root := t.TempDir()

	tests := []struct {
		name   string
		folder string
	}{
		{
			name:   "missing meta.json",
			folder: writeFolder(t, root, "no_meta", "", "bill.jpg"),
		},
		{
			name:   "malformed json",
			folder: writeFolder(t, root, "bad_json", `{not json`, "bill.jpg"),
		},
		{
			name: "non-uuid id",
			folder: writeFolder(t, root, "bad_id", `{
				"id": "not-a-uuid",
				"created_at": "2026-07-01T09:30:00Z",
				"documents": [{"file": "bill.jpg", "type": "image", "order": 1}]
			}`, "bill.jpg"),
		},
		{
			name: "bad created_at",
			folder: writeFolder(t, root, "bad_date", `{
				"id": "00000000-0000-0000-0000-000000000002",
				"created_at": "July 1st",
				"documents": [{"file": "bill.jpg", "type": "image", "order": 1}]
			}`, "bill.jpg"),
		},
		{
			name: "empty documents list",
			folder: writeFolder(t, root, "no_docs", `{
				"id": "00000000-0000-0000-0000-000000000003",
				"created_at": "2026-07-01T09:30:00Z",
				"documents": []
			}`),
		},
		{
			name: "listed file missing on disk",
			folder: writeFolder(t, root, "ghost_file", `{
				"id": "00000000-0000-0000-0000-000000000004",
				"created_at": "2026-07-01T09:30:00Z",
				"documents": [{"file": "bill.jpg", "type": "image", "order": 1}]
			}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadMeta(tt.folder)
			assert.Error(t, err)
		})
	}
}
