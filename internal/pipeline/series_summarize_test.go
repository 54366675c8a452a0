package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAgainstSchema(t *testing.T) {
	schema := map[string]interface{}{
		"billing_date": "string",
		"amount_due":   "number",
		"paid":         "boolean",
		"line_items":   "array",
	}

	t.Run("conforming extraction has no violations", func(t *testing.T) {
		data := map[string]interface{}{
			"billing_date": "2026-07-01",
			"amount_due":   142.75,
			"paid":         false,
			"line_items":   []interface{}{"electricity", "gas"},
		}
		assert.Empty(t, validateAgainstSchema(data, schema))
	})

	t.Run("missing and mistyped fields are flagged", func(t *testing.T) {
		data := map[string]interface{}{
			"billing_date": "2026-07-01",
			"amount_due":   "142.75",
			"line_items":   []interface{}{},
		}
		violations := validateAgainstSchema(data, schema)
		assert.Len(t, violations, 2)
	})

	t.Run("unknown keys are preserved without violation", func(t *testing.T) {
		data := map[string]interface{}{
			"billing_date":  "2026-07-01",
			"amount_due":    1.0,
			"paid":          true,
			"line_items":    []interface{}{},
			"meter_reading": 4021.0,
		}
		assert.Empty(t, validateAgainstSchema(data, schema))
	})

	t.Run("nil schema validates anything", func(t *testing.T) {
		assert.Empty(t, validateAgainstSchema(map[string]interface{}{"x": 1.0}, nil))
	})
}

func TestJSONTypeName(t *testing.T) {
	assert.Equal(t, "string", jsonTypeName("s"))
	assert.Equal(t, "number", jsonTypeName(1.5))
	assert.Equal(t, "boolean", jsonTypeName(true))
	assert.Equal(t, "array", jsonTypeName([]interface{}{}))
	assert.Equal(t, "object", jsonTypeName(map[string]interface{}{}))
	assert.Equal(t, "unknown", jsonTypeName(nil))
}
