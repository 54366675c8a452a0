package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt holds the schema definition for the Prompt entity. Prompts are
// versioned and self-evolving: a prompt_type+document_type (or
// prompt_type+series_id) family has at most one is_active=true row at a
// time, guarded by the prompt family advisory lock rather than a DB
// constraint, since evolution reads-then-writes across two statements.
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_id").
			Unique().
			Immutable(),
		field.Enum("prompt_type").
			Values("classifier", "summarizer", "series_summarizer", "file_summarizer", "series_detector", "scorer").
			Immutable(),
		field.String("document_type").
			Optional().
			Nillable().
			Comment("Set for classifier/summarizer/scorer families, mutually exclusive with series_id"),
		field.String("series_id").
			Optional().
			Nillable().
			Comment("Set for series_summarizer family, mutually exclusive with document_type"),
		field.Text("prompt_text"),
		field.Int("version").
			Default(1),
		field.Bool("is_active").
			Default(true),
		field.Bool("can_evolve").
			Default(true),
		field.Float("score_ceiling").
			Comment("Evolution stops proposing new versions once avg score meets or exceeds this"),
		field.Bool("regenerates_on_update").
			Default(false).
			Comment("When true, evolution flags every series document for re-extraction"),
		field.JSON("performance_metrics", map[string]interface{}{}).
			Optional().
			Comment("For series_summarizer rows, schema_definition lives under the schema_definition key"),
		field.Int("sample_size").
			Default(0).
			Comment("Count of scored documents this version's average is based on"),
		field.Float("avg_score").
			Optional().
			Nillable(),
		field.String("parent_prompt_id").
			Optional().
			Nillable().
			Comment("Predecessor version this one evolved from"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("archived_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Prompt.
func (Prompt) Edges() []ent.Edge {
	return nil
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prompt_type", "document_type", "is_active"),
		index.Fields("prompt_type", "series_id", "is_active"),
	}
}
