package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentSeries holds the schema definition for the DocumentSeries junction
// entity, recording membership of a Document in a Series along with the
// order it was added (drives the "most recent N documents" regeneration
// sampling window).
type DocumentSeries struct {
	ent.Schema
}

// Fields of the DocumentSeries.
func (DocumentSeries) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_series_id").
			Unique().
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.String("series_id").
			Immutable(),
		field.Time("added_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DocumentSeries.
func (DocumentSeries) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("document_series").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
		edge.From("series", Series.Type).
			Ref("document_series").
			Field("series_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DocumentSeries.
func (DocumentSeries) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "series_id").Unique(),
		index.Fields("series_id", "added_at"),
	}
}
