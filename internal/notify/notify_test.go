package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServiceReturnsNilWhenUnconfigured(t *testing.T) {
	assert.Nil(t, NewService("", "#alerts"))
	assert.Nil(t, NewService("xoxb-token", ""))
	assert.Nil(t, NewService("", ""))
}

func TestNilServiceMethodsAreNoOps(t *testing.T) {
	var s *Service
	ctx := context.Background()

	assert.NotPanics(t, func() {
		s.DocumentFailed(ctx, "doc-1", "statement.pdf", "exceeded max retries")
		s.LockTimeout(ctx, "series_prompt:abc", 0)
		s.PromptEvolved(ctx, "classifier", "utility_bill", 1, 2)
	})
}
