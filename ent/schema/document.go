package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for the Document entity.
// A Document is a single unit of user-supplied content moving through the
// OCR → classify → summarize → file → series-summarize lifecycle.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("filename"),
		field.String("source_path").
			Immutable().
			Comment("Inbox folder this document was registered from; OCR reads from here"),
		field.Enum("status").
			Values(
				"pending",
				"ocr_in_progress",
				"ocr_completed",
				"classified",
				"scored_classification",
				"summarized",
				"scored_summary",
				"filed",
				"series_summarizing",
				"series_summarized",
				"series_scoring",
				"completed",
				"failed",
			).
			Default("pending"),
		field.String("document_type").
			Optional().
			Nillable().
			Comment("Assigned by the classify step; may be a new, registry-suggested value"),
		field.Text("extracted_text").
			Optional().
			Nillable().
			Comment("Full OCR text, full-text searchable via extracted_text_tsv"),
		field.JSON("structured_data", map[string]interface{}{}).
			Optional().
			Comment("Series-scoped extraction, re-written on every series extraction"),
		field.JSON("structured_data_generic", map[string]interface{}{}).
			Optional().
			Comment("Generic extraction, written exactly once per successful summarize"),
		field.String("series_prompt_id").
			Optional().
			Nillable().
			Comment("Weak reference to the series_summarizer prompt used for structured_data"),
		field.Enum("extraction_method").
			Values("generic", "series", "both").
			Optional().
			Nillable(),
		field.Int("retry_count").
			Default(0),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Float("avg_ocr_confidence").
			Optional().
			Nillable(),
		field.String("user_id").
			Optional().
			Nillable().
			Comment("Multi-tenancy passthrough, not enforced by this core"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Drives the stale-work recovery sweep"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("document_tags", DocumentTag.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("document_series", DocumentSeries.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("file_documents", FileDocument.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("status", "updated_at"),
		index.Fields("document_type"),
		index.Fields("user_id"),
	}
}

// Annotations — GIN indexes on extracted_text_tsv / structured_data are
// created by a migration hook in internal/database, not by ent itself
// (ent has no first-class tsvector or JSON-GIN field type).
func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
