package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FileDocument holds the schema definition for the FileDocument junction
// entity, recording which source documents contributed to a generated File
// (one-to-many for a per-document filed copy, many-to-one for a series
// digest covering several documents).
type FileDocument struct {
	ent.Schema
}

// Fields of the FileDocument.
func (FileDocument) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("file_document_id").
			Unique().
			Immutable(),
		field.String("file_id").
			Immutable(),
		field.String("document_id").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the FileDocument.
func (FileDocument) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", File.Type).
			Ref("file_documents").
			Field("file_id").
			Unique().
			Required().
			Immutable(),
		edge.From("document", Document.Type).
			Ref("file_documents").
			Field("document_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FileDocument.
func (FileDocument) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id", "document_id").Unique(),
		index.Fields("document_id"),
	}
}
