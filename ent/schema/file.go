package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// File holds the schema definition for the File entity — a tag-signature
// defined aggregation across documents (e.g. all documents tagged
// "bill"+"utilities"), not a single inbound document. Membership is
// computed by tag intersection and re-verified on every file-summary run;
// FileDocument rows are a cache of that computation, not the source of
// truth for membership.
type File struct {
	ent.Schema
}

// Fields of the File.
func (File) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_id").
			Unique().
			Immutable(),
		field.JSON("tags", []string{}).
			Comment("Sorted tag names whose intersection defines membership"),
		field.String("tag_signature").
			Comment("Sorted, lower(tag_name) list joined by ':' — must equal tags exactly"),
		field.String("file_type").
			Optional().
			Nillable().
			Comment("Destination artifact kind, set once the file is generated"),
		field.String("path").
			Optional().
			Nillable().
			Comment("Destination path under the filed-output root, set once generated"),
		field.Enum("status").
			Values("pending", "generating", "generated", "outdated", "regenerating", "failed").
			Default("pending"),
		field.Int("document_count").
			Default(0),
		field.Time("first_document_date").
			Optional().
			Nillable(),
		field.Time("last_document_date").
			Optional().
			Nillable(),
		field.Text("summary_text").
			Optional().
			Nillable(),
		field.JSON("summary_metadata", map[string]interface{}{}).
			Optional(),
		field.String("prompt_version").
			Optional().
			Nillable().
			Comment("Weak reference to the file_summarizer prompt used for summary_text"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("user_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("generated_at").
			Optional().
			Nillable(),
	}
}

// Edges of the File.
func (File) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("file_documents", FileDocument.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the File.
func (File) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tag_signature", "user_id").Unique(),
		index.Fields("status"),
	}
}
