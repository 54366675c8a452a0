package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirmick/alfrd/internal/adapters"
)

func TestSlug(t *testing.T) {
	assert.Equal(t, "pacific-gas-electric", slug("Pacific Gas & Electric"))
	assert.Equal(t, "pg-e", slug("PG&E"))
	assert.Equal(t, "at-t-wireless", slug("AT&T  Wireless!"))
	assert.Equal(t, "lexus-tx-550", slug("Lexus TX 550"))
	assert.Equal(t, "", slug("&&&"))
}

func TestDecodeDetectOutput(t *testing.T) {
	t.Run("full response", func(t *testing.T) {
		out, err := decodeDetectOutput(&adapters.InvokeResult{
			ParsedJSON: map[string]interface{}{
				"entity":      "Pacific Gas & Electric",
				"series_type": "monthly_utility_bill",
				"frequency":   "monthly",
				"metadata":    map[string]interface{}{"account": "123"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Pacific Gas & Electric", out.Entity)
		assert.Equal(t, "monthly_utility_bill", out.SeriesType)
		require.NotNil(t, out.Frequency)
		assert.Equal(t, "monthly", *out.Frequency)
	})

	t.Run("missing entity is rejected", func(t *testing.T) {
		_, err := decodeDetectOutput(&adapters.InvokeResult{
			ParsedJSON: map[string]interface{}{"series_type": "monthly_utility_bill"},
		})
		assert.Error(t, err)
	})

	t.Run("unparsed response is rejected", func(t *testing.T) {
		_, err := decodeDetectOutput(&adapters.InvokeResult{Text: "not json"})
		assert.Error(t, err)
	})
}

func TestDecodeSummarizeOutput(t *testing.T) {
	t.Run("summary plus data envelope", func(t *testing.T) {
		out, err := decodeSummarizeOutput(&adapters.InvokeResult{
			ParsedJSON: map[string]interface{}{
				"summary": "July electricity bill",
				"data":    map[string]interface{}{"amount_due": 142.75},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "July electricity bill", out.Summary)
		assert.Equal(t, 142.75, out.Data["amount_due"])
	})

	t.Run("flat response falls back to the raw object", func(t *testing.T) {
		out, err := decodeSummarizeOutput(&adapters.InvokeResult{
			ParsedJSON: map[string]interface{}{"amount_due": 142.75},
		})
		require.NoError(t, err)
		assert.Equal(t, 142.75, out.Data["amount_due"])
	})

	t.Run("empty extraction is rejected", func(t *testing.T) {
		_, err := decodeSummarizeOutput(&adapters.InvokeResult{
			ParsedJSON: map[string]interface{}{},
		})
		assert.Error(t, err)
	})
}
