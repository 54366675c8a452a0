package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskTextRedactsBuiltinPatterns(t *testing.T) {
	svc := NewService(true, "default")

	masked := svc.MaskText("Contact jane@example.com or call 555-123-4567, SSN 123-45-6789")

	assert.Contains(t, masked, "[REDACTED_EMAIL]")
	assert.Contains(t, masked, "[REDACTED_PHONE]")
	assert.Contains(t, masked, "[REDACTED_SSN]")
	assert.NotContains(t, masked, "jane@example.com")
}

func TestMaskTextDisabledIsPassthrough(t *testing.T) {
	svc := NewService(false, "default")
	text := "SSN 123-45-6789"
	assert.Equal(t, text, svc.MaskText(text))
}

func TestMaskJSONRecursesIntoNestedStructures(t *testing.T) {
	svc := NewService(true, "pii")

	data := map[string]interface{}{
		"account_holder": "jane@example.com",
		"notes": map[string]interface{}{
			"contact": "555-123-4567",
		},
		"history": []interface{}{"SSN 123-45-6789", 42},
	}

	masked := svc.MaskJSON(data)

	assert.Equal(t, "[REDACTED_EMAIL]", masked["account_holder"])
	nested := masked["notes"].(map[string]interface{})
	assert.Equal(t, "[REDACTED_PHONE]", nested["contact"])
	history := masked["history"].([]interface{})
	assert.Equal(t, "SSN [REDACTED_SSN]", history[0])
	assert.Equal(t, 42, history[1])
}

func TestMaskTextUsesConfiguredGroupOnly(t *testing.T) {
	svc := NewService(true, "basic")
	masked := svc.MaskText("email jane@example.com api_key=sk_live_abcdefgh12345678")

	assert.Contains(t, masked, "jane@example.com", "basic group should not touch emails")
	assert.Contains(t, masked, "[REDACTED_CREDENTIAL]")
}
