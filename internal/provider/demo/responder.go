// Package demo provides the placeholder responder used when no completion
// endpoint is configured. It never calls out and its answers are always
// flagged as demo content by the chat service.
package demo

import (
	"context"
	"fmt"
	"strings"

	"github.com/davidbz/lawra/internal/observability"
)

const maxQuotedRunes = 120

// Responder implements domain.PlaceholderResponder with a fixed template.
type Responder struct{}

// NewResponder creates a new demo responder.
func NewResponder() *Responder {
	return &Responder{}
}

// Respond returns a placeholder answer that quotes the question.
func (r *Responder) Respond(ctx context.Context, message string) string {
	observability.FromContext(ctx).Debug("answering with demo placeholder")

	return fmt.Sprintf(
		"Thank you for your question %q. This is a sample answer from the AI lawyer demo. "+
			"A live system would analyse your legal question and give tailored guidance. "+
			"Please contact a professional lawyer for advice on your specific situation.",
		quote(message),
	)
}

// quote trims the question and shortens it to maxQuotedRunes.
func quote(message string) string {
	runes := []rune(strings.TrimSpace(message))
	if len(runes) <= maxQuotedRunes {
		return string(runes)
	}
	return string(runes[:maxQuotedRunes]) + "..."
}
