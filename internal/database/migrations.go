package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text-search and JSON-containment indexes
// that ent's schema DSL has no field type for.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_documents_extracted_text_tsv
		 ON documents USING gin(to_tsvector('english', COALESCE(extracted_text, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create extracted_text GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_documents_structured_data_gin
		 ON documents USING gin(structured_data)`)
	if err != nil {
		return fmt.Errorf("failed to create structured_data GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_documents_structured_data_generic_gin
		 ON documents USING gin(structured_data_generic)`)
	if err != nil {
		return fmt.Errorf("failed to create structured_data_generic GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_details_gin
		 ON events USING gin(details)`)
	if err != nil {
		return fmt.Errorf("failed to create events.details GIN index: %w", err)
	}

	return nil
}
