package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity — an append-only
// audit log row. Unlike a transient progress feed, rows here are never
// swept; view-events reconstructs a document's full history from them.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("document_id").
			Optional().
			Nillable().
			Immutable().
			Comment("Nil for series- or system-scoped events"),
		field.String("series_id").
			Optional().
			Nillable().
			Immutable(),
		field.String("category").
			Immutable().
			Comment("e.g. lifecycle, lock, prompt_evolution, notify"),
		field.String("event_type").
			Immutable(),
		field.JSON("details", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Masked before write; never contains raw extracted text or secrets"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("events").
			Field("document_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
		index.Fields("series_id", "created_at"),
		index.Fields("category"),
	}
}
