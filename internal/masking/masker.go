// Package masking redacts PII and secret-shaped substrings from extracted
// text and structured data before either is embedded in an event's details
// payload. It never touches the persisted Document row itself — only what
// gets written to the audit log.
package masking

// Masker is the interface for structurally-aware maskers that need more
// than regex substitution (e.g. parsing a JSON blob and redacting specific
// keys rather than pattern-matching their values).
type Masker interface {
	// Name identifies this masker. Code maskers are applied regardless of
	// the configured pattern group.
	Name() string

	// AppliesTo is a cheap pre-check (substring scan, not parsing) that
	// decides whether Mask is worth calling.
	AppliesTo(data string) bool

	// Mask returns the redacted text. Must be defensive: return the input
	// unchanged on any parse error rather than panicking.
	Mask(data string) string
}
