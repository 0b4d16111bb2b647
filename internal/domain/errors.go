package domain

import (
	"errors"
	"net/http"
)

var (
	// ErrEmptyMessage indicates a chat submission with no text.
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrConversationBusy indicates the conversation already has a pending completion.
	ErrConversationBusy = errors.New("conversation has a pending completion")

	// ErrLawyerNotFound indicates an unknown directory ID.
	ErrLawyerNotFound = errors.New("lawyer not found")

	// ErrMissingConversationID indicates a chat submission without a conversation.
	ErrMissingConversationID = errors.New("conversation id is required")

	// ErrInvalidHistory indicates a conversation turn with an unknown role.
	ErrInvalidHistory = errors.New("invalid conversation history")

	// ErrInvalidBooking indicates a booking request that fails validation.
	ErrInvalidBooking = errors.New("invalid booking request")
)

// ErrorKind classifies a failed completion.
type ErrorKind string

const (
	KindNotConfigured     ErrorKind = "not_configured"
	KindInvalidCredential ErrorKind = "invalid_credential"
	KindForbidden         ErrorKind = "forbidden"
	KindRateLimited       ErrorKind = "rate_limited"
	KindBadRequest        ErrorKind = "bad_request"
	KindModelNotFound     ErrorKind = "model_not_found"
	KindUpstreamError     ErrorKind = "upstream_error"
	KindEmptyResponse     ErrorKind = "empty_response"
	KindResponseTooLong   ErrorKind = "response_too_long"
	KindTransportError    ErrorKind = "transport_error"
)

// statusKinds maps endpoint status codes to error kinds. Statuses not
// listed classify as KindUpstreamError.
//
//nolint:gochecknoglobals // read-only lookup table
var statusKinds = map[int]ErrorKind{
	http.StatusUnauthorized:    KindInvalidCredential,
	http.StatusForbidden:       KindForbidden,
	http.StatusTooManyRequests: KindRateLimited,
	http.StatusBadRequest:      KindBadRequest,
	http.StatusNotFound:        KindModelNotFound,
}

// KindForStatus classifies an endpoint status code.
func KindForStatus(status int) ErrorKind {
	if kind, ok := statusKinds[status]; ok {
		return kind
	}
	return KindUpstreamError
}

// CompletionError is a classified completion failure. Message is safe to
// show to the end user as is.
type CompletionError struct {
	Kind       ErrorKind `json:"kind"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code,omitempty"`
	Err        error     `json:"-"`
}

func (e *CompletionError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

// NewTransportError classifies a failure that never reached the endpoint.
func NewTransportError(err error) *CompletionError {
	return &CompletionError{
		Kind:    KindTransportError,
		Message: "Could not connect to the AI service. Please try again.",
		Err:     err,
	}
}

// AsCompletionError extracts a *CompletionError from err. Any other error is
// classified as a transport failure.
func AsCompletionError(err error) *CompletionError {
	if err == nil {
		return nil
	}

	var completionErr *CompletionError
	if errors.As(err, &completionErr) {
		return completionErr
	}

	return NewTransportError(err)
}
