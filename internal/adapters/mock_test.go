package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockOCRExtractProducesText(t *testing.T) {
	ocr := NewMockOCR()
	result, err := ocr.Extract(context.Background(), "/inbox/bill_1")
	require.NoError(t, err)
	assert.Contains(t, result.FullText, "bill_1")
	assert.Equal(t, 1, result.DocumentCount)
	assert.NotEmpty(t, result.Pages)
}

func TestMockOCRExtractRejectsEmptyFolder(t *testing.T) {
	ocr := NewMockOCR()
	_, err := ocr.Extract(context.Background(), "")
	assert.ErrorIs(t, err, ErrFatal)
}

func TestMockLLMInvokeParsesJSONWhenRequested(t *testing.T) {
	llm := NewMockLLM()
	result, err := llm.Invoke(context.Background(), "classify this", "some text", InvokeOptions{ParseJSON: true})
	require.NoError(t, err)
	assert.NotNil(t, result.ParsedJSON)
	assert.Equal(t, "unclassified", result.ParsedJSON["document_type"])
}

func TestMockLLMInvokeReturnsTextByDefault(t *testing.T) {
	llm := NewMockLLM()
	result, err := llm.Invoke(context.Background(), "summarize", "hello world", InvokeOptions{})
	require.NoError(t, err)
	assert.Contains(t, result.Text, "hello world")
	assert.Nil(t, result.ParsedJSON)
}
