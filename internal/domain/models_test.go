package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lawra/internal/domain"
)

func TestCompletionRequestMessages(t *testing.T) {
	t.Run("should frame history between system and user turns", func(t *testing.T) {
		req := &domain.CompletionRequest{
			SystemPrompt: domain.DefaultPersona,
			History: []domain.ConversationTurn{
				{Role: domain.RoleUser, Content: "first"},
				{Role: domain.RoleAssistant, Content: "answer"},
			},
			NewMessage: "second",
		}

		messages := req.Messages()

		require.Len(t, messages, len(req.History)+2)
		require.Equal(t, domain.ConversationTurn{Role: domain.RoleSystem, Content: domain.DefaultPersona}, messages[0])
		require.Equal(t, req.History, messages[1:3])
		require.Equal(t, domain.ConversationTurn{Role: domain.RoleUser, Content: "second"}, messages[3])
	})

	t.Run("should produce two messages for empty history", func(t *testing.T) {
		req := &domain.CompletionRequest{SystemPrompt: "sys", NewMessage: "hi"}

		messages := req.Messages()

		require.Len(t, messages, 2)
		require.Equal(t, domain.RoleSystem, messages[0].Role)
		require.Equal(t, domain.RoleUser, messages[1].Role)
	})
}
