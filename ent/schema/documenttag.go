package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DocumentTag holds the schema definition for the DocumentTag junction
// entity. Explicit (rather than a bare ent M2M edge) because the unique
// (document_id, tag_id) pair and cascade-on-document-delete invariants
// are easiest to state as first-class constraints on a real table.
type DocumentTag struct {
	ent.Schema
}

// Fields of the DocumentTag.
func (DocumentTag) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_tag_id").
			Unique().
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.String("tag_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DocumentTag.
func (DocumentTag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("document_tags").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
		edge.From("tag", Tag.Type).
			Ref("document_tags").
			Field("tag_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DocumentTag.
func (DocumentTag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "tag_id").Unique(),
		index.Fields("tag_id"),
	}
}
