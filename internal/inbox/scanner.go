// Package inbox walks the watched inbox root once per orchestrator tick
// and registers new documents. Each document is a folder containing a
// meta.json manifest plus the image/text files it describes; the scanner
// validates the manifest, creates the pending row, and attaches any
// user-supplied tags. Invalid folders are skipped with an event and no
// row — the database, not the filesystem, is the source of truth.
package inbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sirmick/alfrd/ent/tag"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
)

// metaFilename is the manifest every inbox folder must carry.
const metaFilename = "meta.json"

// Meta is the parsed meta.json manifest.
type Meta struct {
	ID        string       `json:"id"`
	CreatedAt string       `json:"created_at"`
	Documents []MetaFile   `json:"documents"`
	Metadata  MetaMetadata `json:"metadata"`
}

// MetaFile is one source file inside a document folder.
type MetaFile struct {
	File  string `json:"file"`
	Type  string `json:"type"`
	Order int    `json:"order"`
}

// MetaMetadata carries ingestion provenance and user-supplied tags.
type MetaMetadata struct {
	Source string   `json:"source"`
	Tags   []string `json:"tags"`
}

// Scanner registers documents found under the inbox root.
type Scanner struct {
	root      string
	documents *data.DocumentService
	tags      *data.TagService
	events    *events.Publisher
	logger    *slog.Logger

	// invalid remembers folders that already failed validation, so a
	// broken folder is reported once, not on every sweep. Restarting the
	// process reports it again, which is the desired reminder.
	invalid map[string]struct{}
}

// NewScanner constructs a Scanner over root.
func NewScanner(root string, documents *data.DocumentService, tags *data.TagService, publisher *events.Publisher) *Scanner {
	return &Scanner{
		root:      root,
		documents: documents,
		tags:      tags,
		events:    publisher,
		logger:    slog.Default().With("component", "inbox"),
		invalid:   make(map[string]struct{}),
	}
}

// Scan sweeps the inbox once and returns the number of newly registered
// documents. Folders already registered (same manifest id) are skipped
// silently; invalid folders are skipped with a validation_error event.
func (s *Scanner) Scan(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read inbox root %s: %w", s.root, err)
	}

	registered := 0
	for _, entry := range entries {
		if ctx.Err() != nil {
			return registered, ctx.Err()
		}
		if !entry.IsDir() {
			continue
		}

		folder := filepath.Join(s.root, entry.Name())
		meta, err := ReadMeta(folder)
		if err != nil {
			if _, seen := s.invalid[folder]; !seen {
				s.invalid[folder] = struct{}{}
				s.logger.Warn("skipping invalid inbox folder", "folder", folder, "error", err)
				_ = s.events.System(ctx, events.CategorySystem, events.EventValidationError, map[string]interface{}{
					"folder": folder,
					"reason": err.Error(),
				})
			}
			continue
		}
		delete(s.invalid, folder)

		created, err := s.register(ctx, folder, meta)
		if err != nil {
			return registered, err
		}
		if created {
			registered++
		}
	}
	return registered, nil
}

// register creates the pending row and attaches user tags. Returns false
// when the document already exists (a benign repeat sweep).
func (s *Scanner) register(ctx context.Context, folder string, meta *Meta) (bool, error) {
	doc, err := s.documents.Register(ctx, data.RegisterRequest{
		ID:         meta.ID,
		Filename:   meta.Documents[0].File,
		SourcePath: folder,
	})
	if err != nil {
		if errors.Is(err, data.ErrAlreadyExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to register inbox document %s: %w", meta.ID, err)
	}

	for _, name := range meta.Metadata.Tags {
		t, err := s.tags.GetOrCreate(ctx, name, tag.CreatedByUser, nil)
		if err != nil {
			return true, fmt.Errorf("failed to create user tag %q for %s: %w", name, doc.ID, err)
		}
		if err := s.tags.AttachToDocument(ctx, doc.ID, t.ID); err != nil {
			return true, err
		}
	}

	_ = s.events.Document(ctx, doc.ID, events.CategoryLifecycle, events.EventDocumentRegistered, map[string]interface{}{
		"folder":     folder,
		"file_count": len(meta.Documents),
		"source":     meta.Metadata.Source,
	})
	s.logger.Info("registered inbox document", "document_id", doc.ID, "folder", folder)
	return true, nil
}

// ReadMeta loads and validates a folder's meta.json against the inbox
// contract: a UUID id, an RFC 3339 created_at, and at least one listed
// file that actually exists in the folder.
func ReadMeta(folder string) (*Meta, error) {
	raw, err := os.ReadFile(filepath.Join(folder, metaFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing %s", metaFilename)
		}
		return nil, fmt.Errorf("failed to read %s: %w", metaFilename, err)
	}

	var meta Meta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("malformed %s: %w", metaFilename, err)
	}

	if _, err := uuid.Parse(meta.ID); err != nil {
		return nil, fmt.Errorf("id %q is not a valid UUID", meta.ID)
	}
	if _, err := time.Parse(time.RFC3339, meta.CreatedAt); err != nil {
		return nil, fmt.Errorf("created_at %q is not RFC 3339", meta.CreatedAt)
	}
	if len(meta.Documents) == 0 {
		return nil, fmt.Errorf("documents list is empty")
	}
	for _, d := range meta.Documents {
		if d.File == "" {
			return nil, fmt.Errorf("documents entry with empty file name")
		}
		if _, err := os.Stat(filepath.Join(folder, d.File)); err != nil {
			return nil, fmt.Errorf("listed file %q not found in folder", d.File)
		}
	}
	return &meta, nil
}
