// Package notify sends optional Slack alerts for terminal document
// failures, persistent advisory-lock timeouts, and prompt evolution. It is
// nil-safe throughout: an unconfigured Service is valid and every method
// becomes a no-op, matching the caller discipline the rest of this
// codebase uses for optional collaborators.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goslack "github.com/slack-go/slack"
)

// Service posts failure and evolution notifications to a configured Slack
// channel. A nil *Service is valid; every method on it is a no-op.
type Service struct {
	api     *goslack.Client
	channel string
	logger  *slog.Logger
}

// NewService constructs a Service, or returns nil if token or channel is
// empty — the same "disabled means nil, not an error" contract the rest of
// this codebase's optional collaborators use.
func NewService(token, channel string) *Service {
	if token == "" || channel == "" {
		return nil
	}
	return &Service{
		api:     goslack.New(token),
		channel: channel,
		logger:  slog.Default().With("component", "notify"),
	}
}

// DocumentFailed notifies that a document exhausted its retry budget and
// moved to the terminal failed status.
func (s *Service) DocumentFailed(ctx context.Context, documentID, filename, reason string) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(":x: Document *%s* (`%s`) failed permanently: %s", filename, documentID, reason)
	s.post(ctx, text)
}

// LockTimeout notifies that an advisory lock wait exceeded its deadline,
// which usually means a stuck worker is holding a series or prompt-family
// lock and needs operator attention.
func (s *Service) LockTimeout(ctx context.Context, lockKey string, waited time.Duration) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(":warning: Advisory lock `%s` timed out after %s", lockKey, waited)
	s.post(ctx, text)
}

// PromptEvolved notifies that a prompt family evolved to a new version.
func (s *Service) PromptEvolved(ctx context.Context, promptType, documentType string, fromVersion, toVersion int) {
	if s == nil {
		return
	}
	text := fmt.Sprintf(":arrows_counterclockwise: Prompt %s/%s evolved v%d -> v%d", promptType, documentType, fromVersion, toVersion)
	s.post(ctx, text)
}

// post sends text to the configured channel, logging failures without
// returning them — a notification failure must never affect the pipeline
// it is reporting on.
func (s *Service) post(ctx context.Context, text string) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, _, err := s.api.PostMessageContext(ctx, s.channel, goslack.MsgOptionText(text, false))
	if err != nil {
		s.logger.Error("failed to post slack notification", "error", err)
	}
}
