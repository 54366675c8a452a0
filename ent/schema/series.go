package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Series holds the schema definition for the Series entity — a recurring
// collection tied to an entity+pattern (e.g. "PG&E"+"monthly_utility_bill").
type Series struct {
	ent.Schema
}

// Fields of the Series.
func (Series) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("series_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.String("entity").
			Comment("Canonicalized entity name, e.g. 'Pacific Gas & Electric'"),
		field.String("entity_normalized").
			Comment("Conservative case/whitespace-only normalization of entity, used for lookup"),
		field.String("series_type"),
		field.String("series_type_normalized"),
		field.String("frequency").
			Optional().
			Nillable(),
		field.JSON("metadata", map[string]interface{}{}).
			Optional(),
		field.String("active_prompt_id").
			Optional().
			Nillable().
			Comment("Set exactly once by the first series-prompt creator under series_prompt_lock"),
		field.Bool("regeneration_pending").
			Default(false),
		field.Int("document_count").
			Default(0),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Series.
func (Series) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("document_series", DocumentSeries.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Series.
func (Series) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_normalized", "series_type_normalized", "user_id").Unique(),
		index.Fields("regeneration_pending"),
		index.Fields("document_count"),
	}
}
