package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/davidbz/lawra/internal/observability"
)

// ExampleQuestions are starter questions offered on an empty conversation.
//
//nolint:gochecknoglobals // read-only list
var ExampleQuestions = []string{
	"In which cases can I file for divorce?",
	"What are the steps for making a will?",
	"What are an employee's rights when dismissed from work?",
	"What should I watch out for when taking a bank loan?",
}

// ChatReply is the answer to one chat submission. Exactly one of Text or
// Error is meaningful unless Demo is set, in which case Text holds a
// placeholder and Error explains why.
type ChatReply struct {
	ConversationID string           `json:"conversation_id"`
	Text           string           `json:"text,omitempty"`
	Model          string           `json:"model,omitempty"`
	Demo           bool             `json:"demo"`
	Error          *CompletionError `json:"error,omitempty"`
}

// ChatStatus reports whether live answers are available.
type ChatStatus struct {
	Configured bool     `json:"configured"`
	Model      string   `json:"model"`
	Examples   []string `json:"examples"`
}

// ChatService runs consultations against a completion client.
type ChatService struct {
	client      CompletionClient
	placeholder PlaceholderResponder
	guard       InflightGuard
	events      EventPublisher
}

// NewChatService creates a new chat service (DI constructor). placeholder
// may be nil, in which case unconfigured submissions get only an error.
func NewChatService(
	client CompletionClient,
	placeholder PlaceholderResponder,
	guard InflightGuard,
	events EventPublisher,
) *ChatService {
	return &ChatService{
		client:      client,
		placeholder: placeholder,
		guard:       guard,
		events:      events,
	}
}

// Status reports the completion client configuration.
func (s *ChatService) Status() ChatStatus {
	return ChatStatus{
		Configured: s.client.IsConfigured(),
		Model:      s.client.Model(),
		Examples:   slices.Clone(ExampleQuestions),
	}
}

// Ask answers message in the context of history. Completion failures are
// reported in ChatReply.Error; the returned error is reserved for invalid
// submissions and guard failures.
func (s *ChatService) Ask(
	ctx context.Context,
	conversationID string,
	history []ConversationTurn,
	message string,
) (*ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	if conversationID == "" {
		return nil, ErrMissingConversationID
	}

	if err := validateHistory(history); err != nil {
		return nil, err
	}

	ctx = observability.WithConversationID(ctx, conversationID)
	logger := observability.FromContext(ctx)

	lease, acquired, err := s.guard.Acquire(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire conversation: %w", err)
	}
	if !acquired {
		logger.Info("rejected submission while completion pending")
		return nil, ErrConversationBusy
	}
	defer func() {
		if releaseErr := s.guard.Release(context.WithoutCancel(ctx), conversationID, lease); releaseErr != nil {
			logger.Warn("failed to release conversation", observability.Error(releaseErr))
		}
	}()

	if !s.client.IsConfigured() {
		return s.unconfiguredReply(ctx, conversationID, message), nil
	}

	req := &CompletionRequest{
		SystemPrompt: DefaultPersona,
		History:      slices.Clone(history),
		NewMessage:   message,
		Model:        s.client.Model(),
	}

	logger.Info("asking completion client",
		observability.Int("history_length", len(history)),
		observability.String("model", req.Model),
	)

	resp, err := s.client.Complete(ctx, req)
	if err != nil {
		completionErr := AsCompletionError(err)
		logger.Warn("completion failed",
			observability.String("kind", string(completionErr.Kind)),
			observability.Error(err),
		)
		s.publish(ctx, "chat.failed", map[string]any{
			"conversation_id": conversationID,
			"kind":            string(completionErr.Kind),
		})
		return &ChatReply{
			ConversationID: conversationID,
			Model:          req.Model,
			Error:          completionErr,
		}, nil
	}

	s.publish(ctx, "chat.completed", map[string]any{
		"conversation_id":   conversationID,
		"model":             resp.Model,
		"completion_tokens": resp.Usage.CompletionTokens,
	})

	return &ChatReply{
		ConversationID: conversationID,
		Text:           resp.Text,
		Model:          resp.Model,
	}, nil
}

func (s *ChatService) unconfiguredReply(ctx context.Context, conversationID, message string) *ChatReply {
	notConfigured := &CompletionError{
		Kind:    KindNotConfigured,
		Message: "The AI service is not configured. Showing a demo answer.",
	}

	reply := &ChatReply{
		ConversationID: conversationID,
		Error:          notConfigured,
	}

	if s.placeholder != nil {
		reply.Text = s.placeholder.Respond(ctx, message)
		reply.Demo = true
	} else {
		notConfigured.Message = "The AI service is not configured."
	}

	observability.FromContext(ctx).Warn("completion client not configured",
		observability.Bool("demo", reply.Demo))

	return reply
}

func (s *ChatService) publish(ctx context.Context, eventType string, data map[string]any) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, eventType, data)
}

func validateHistory(history []ConversationTurn) error {
	for i, turn := range history {
		switch turn.Role {
		case RoleUser, RoleAssistant, RoleSystem:
		default:
			return fmt.Errorf("%w: turn %d has role %q", ErrInvalidHistory, i, turn.Role)
		}
	}
	return nil
}
