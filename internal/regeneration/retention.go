package regeneration

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Sweeper prunes on-disk OCR artifacts older than a configured age. The
// database row (including extracted_text) is never touched — only the
// {doc_id}.txt / {doc_id}_llm.json files, which can be regenerated by
// reprocessing if ever needed again.
type Sweeper struct {
	dir    string
	maxAge time.Duration
	logger *slog.Logger
}

// NewSweeper constructs a Sweeper over the artifacts directory.
func NewSweeper(dir string, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		dir:    dir,
		maxAge: maxAge,
		logger: slog.Default().With("component", "retention"),
	}
}

// Sweep removes artifacts whose modification time is older than maxAge,
// returning how many files were pruned. Removal failures are logged and
// skipped; housekeeping must never take anything else down.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-s.maxAge)
	pruned := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return pruned, ctx.Err()
		}
		if entry.IsDir() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.logger.Warn("failed to prune artifact", "path", path, "error", err)
			continue
		}
		pruned++
	}

	if pruned > 0 {
		s.logger.Info("pruned aged artifacts", "count", pruned)
	}
	return pruned, nil
}

// Run sweeps on an interval until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				s.logger.Error("retention sweep failed", "error", err)
			}
		}
	}
}
