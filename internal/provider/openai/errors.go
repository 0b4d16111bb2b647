package openai

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"

	"github.com/davidbz/lawra/internal/domain"
)

// classifyError turns an SDK error into a domain.CompletionError. Endpoint
// errors are classified by status through domain.KindForStatus; anything
// else is a transport failure.
func classifyError(err error, model string) *domain.CompletionError {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return domain.NewTransportError(err)
	}

	kind := domain.KindForStatus(apiErr.StatusCode)

	return &domain.CompletionError{
		Kind:       kind,
		Message:    userMessage(kind, apiErr.StatusCode, endpointDetail(apiErr), model),
		StatusCode: apiErr.StatusCode,
		Err:        err,
	}
}

func userMessage(kind domain.ErrorKind, status int, detail, model string) string {
	switch kind {
	case domain.KindInvalidCredential:
		return "The API key is invalid or has expired. Please check the configuration."
	case domain.KindForbidden:
		return "No access to the API or no remaining credit. Please check the account billing."
	case domain.KindRateLimited:
		return "The API quota was exceeded. Please wait a moment and try again."
	case domain.KindBadRequest:
		return fmt.Sprintf("Invalid request: %s", detail)
	case domain.KindModelNotFound:
		return fmt.Sprintf("Model %q was not found. Please check the configuration.", model)
	default:
		return fmt.Sprintf("AI service error (%d): %s", status, detail)
	}
}

func endpointDetail(apiErr *openai.Error) string {
	if apiErr.Message != "" {
		return apiErr.Message
	}
	if text := http.StatusText(apiErr.StatusCode); text != "" {
		return text
	}
	return "unknown error"
}
