package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tag holds the schema definition for the Tag entity — a normalized label
// associated with documents, either user-supplied, LLM-suggested, or
// system-derived (the auto-tag rule and canonical series tags).
type Tag struct {
	ent.Schema
}

// Fields of the Tag.
func (Tag) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tag_id").
			Unique().
			Immutable(),
		field.String("tag_name"),
		field.String("tag_normalized").
			Comment("lower(tag_name), unique"),
		field.Enum("created_by").
			Values("user", "llm", "system"),
		field.String("category").
			Optional().
			Nillable(),
		field.Int("usage_count").
			Default(0),
		field.Time("last_used").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Tag.
func (Tag) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("document_tags", DocumentTag.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Tag.
func (Tag) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tag_normalized").Unique(),
	}
}
