// Package typeregistry maintains an in-memory catalog of known document
// types and their most common tag combinations, refreshed periodically
// from the data layer so the classify step can hand the model a
// consistent set of known labels instead of letting every call invent its
// own taxonomy.
package typeregistry

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/document"
)

// TagCombination is a set of tag names (excluding series:-prefixed tags)
// observed together on documents of one type, along with how often that
// combination occurs.
type TagCombination struct {
	Tags  []string
	Count int
}

// Registry holds the current document-type catalog and, per type, its
// top-N tag combinations. Safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	types       []string
	combos      map[string][]TagCombination
	client      *ent.Client
	topN        int
	lastRefresh time.Time
}

// NewRegistry constructs an empty Registry. Call Refresh before first use,
// or start a background refresh loop with Run.
func NewRegistry(client *ent.Client, topN int) *Registry {
	if topN <= 0 {
		topN = 5
	}
	return &Registry{
		client: client,
		topN:   topN,
		combos: make(map[string][]TagCombination),
	}
}

// Types returns the known document-type catalog as of the last refresh.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.types))
	copy(out, r.types)
	return out
}

// TopTagCombinations returns the most common tag combinations observed for
// documentType, most frequent first.
func (r *Registry) TopTagCombinations(documentType string) []TagCombination {
	r.mu.RLock()
	defer r.mu.RUnlock()
	combos := r.combos[documentType]
	out := make([]TagCombination, len(combos))
	copy(out, combos)
	return out
}

// LastRefresh reports when the registry was last successfully refreshed.
func (r *Registry) LastRefresh() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastRefresh
}

// Refresh reloads the document-type catalog and per-type tag combinations
// from the database. Safe to call concurrently with reads.
func (r *Registry) Refresh(ctx context.Context) error {
	types, err := r.loadDocumentTypes(ctx)
	if err != nil {
		return err
	}

	combos := make(map[string][]TagCombination, len(types))
	for _, dt := range types {
		c, err := r.loadTopTagCombinations(ctx, dt)
		if err != nil {
			return err
		}
		combos[dt] = c
	}

	r.mu.Lock()
	r.types = types
	r.combos = combos
	r.lastRefresh = time.Now()
	r.mu.Unlock()
	return nil
}

// Run refreshes the registry immediately, then on every tick of interval,
// until ctx is cancelled. Refresh errors are swallowed so a transient DB
// hiccup doesn't kill the loop; the registry simply keeps serving its
// last-known-good snapshot.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	_ = r.Refresh(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = r.Refresh(ctx)
		}
	}
}

func (r *Registry) loadDocumentTypes(ctx context.Context) ([]string, error) {
	rows, err := r.client.Document.Query().
		Where(document.DocumentTypeNotNil()).
		GroupBy(document.FieldDocumentType).
		Strings(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(rows)
	return rows, nil
}

// loadTopTagCombinations finds, for a document type, the most frequent
// sorted sets of non-series tag names attached to documents of that type.
func (r *Registry) loadTopTagCombinations(ctx context.Context, documentType string) ([]TagCombination, error) {
	docs, err := r.client.Document.Query().
		Where(document.DocumentTypeEQ(documentType)).
		WithDocumentTags(func(q *ent.DocumentTagQuery) {
			q.WithTag()
		}).
		All(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	tagsBySignature := make(map[string][]string)
	for _, doc := range docs {
		var names []string
		for _, dt := range doc.Edges.DocumentTags {
			if dt.Edges.Tag == nil {
				continue
			}
			name := dt.Edges.Tag.TagName
			if strings.HasPrefix(name, "series:") {
				continue
			}
			names = append(names, name)
		}
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		sig := strings.Join(names, "|")
		counts[sig]++
		tagsBySignature[sig] = names
	}

	combos := make([]TagCombination, 0, len(counts))
	for sig, count := range counts {
		combos = append(combos, TagCombination{Tags: tagsBySignature[sig], Count: count})
	}
	sort.Slice(combos, func(i, j int) bool { return combos[i].Count > combos[j].Count })

	if len(combos) > r.topN {
		combos = combos[:r.topN]
	}
	return combos, nil
}
