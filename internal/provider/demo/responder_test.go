package demo_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lawra/internal/provider/demo"
)

func TestRespond_QuotesQuestion(t *testing.T) {
	responder := demo.NewResponder()

	answer := responder.Respond(context.Background(), "  How do I write a will?  ")

	require.Contains(t, answer, `"How do I write a will?"`)
	require.Contains(t, answer, "demo")
}

func TestRespond_Deterministic(t *testing.T) {
	responder := demo.NewResponder()
	ctx := context.Background()

	require.Equal(t,
		responder.Respond(ctx, "question"),
		responder.Respond(ctx, "question"),
	)
}

func TestRespond_TruncatesLongQuestions(t *testing.T) {
	responder := demo.NewResponder()
	long := strings.Repeat("ก", 500)

	answer := responder.Respond(context.Background(), long)

	require.NotContains(t, answer, long)
	require.Contains(t, answer, strings.Repeat("ก", 120)+"...")
}
