package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/internal/masking"
)

// Publisher appends rows to the event log. It is the only writer of the
// events table — every package that needs to record history holds a
// Publisher rather than touching ent.Client.Event directly, so masking is
// never accidentally skipped.
type Publisher struct {
	client *ent.Client
	masker *masking.Service
}

// NewPublisher constructs a Publisher. masker may be nil to disable
// masking entirely (tests typically do this to assert on raw content).
func NewPublisher(client *ent.Client, masker *masking.Service) *Publisher {
	return &Publisher{client: client, masker: masker}
}

// Document records a document-scoped event.
func (p *Publisher) Document(ctx context.Context, documentID, category, eventType string, details map[string]interface{}) error {
	return p.write(ctx, &documentID, nil, category, eventType, details)
}

// Series records a series-scoped event.
func (p *Publisher) Series(ctx context.Context, seriesID, category, eventType string, details map[string]interface{}) error {
	return p.write(ctx, nil, &seriesID, category, eventType, details)
}

// System records an event with no document or series scope (e.g. a
// prompt-family lock event keyed by document_type rather than an ID).
func (p *Publisher) System(ctx context.Context, category, eventType string, details map[string]interface{}) error {
	return p.write(ctx, nil, nil, category, eventType, details)
}

func (p *Publisher) write(ctx context.Context, documentID, seriesID *string, category, eventType string, details map[string]interface{}) error {
	if p.masker != nil && details != nil {
		details = p.masker.MaskJSON(details)
	}

	create := p.client.Event.Create().
		SetID(uuid.NewString()).
		SetCategory(category).
		SetEventType(eventType)

	if documentID != nil {
		create = create.SetDocumentID(*documentID)
	}
	if seriesID != nil {
		create = create.SetSeriesID(*seriesID)
	}
	if details != nil {
		create = create.SetDetails(details)
	}

	if _, err := create.Save(ctx); err != nil {
		slog.Error("failed to persist event",
			"category", category, "event_type", eventType, "error", err)
		return fmt.Errorf("failed to persist event %s/%s: %w", category, eventType, err)
	}
	return nil
}
