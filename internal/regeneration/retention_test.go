package regeneration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepPrunesOnlyAgedArtifacts(t *testing.T) {
	dir := t.TempDir()

	oldPath := filepath.Join(dir, "old-doc.txt")
	require.NoError(t, os.WriteFile(oldPath, []byte("old"), 0o644))
	aged := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, aged, aged))

	freshPath := filepath.Join(dir, "fresh-doc.txt")
	require.NoError(t, os.WriteFile(freshPath, []byte("fresh"), 0o644))

	sweeper := NewSweeper(dir, 24*time.Hour)
	pruned, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, pruned)

	_, err = os.Stat(oldPath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(freshPath)
	assert.NoError(t, err)
}

func TestSweepMissingDirIsNoop(t *testing.T) {
	sweeper := NewSweeper(filepath.Join(t.TempDir(), "nope"), time.Hour)
	pruned, err := sweeper.Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, pruned)
}
