package domain

import "context"

// CompletionClient answers a consultation through a remote chat-completion
// endpoint. Failures are returned as *CompletionError.
type CompletionClient interface {
	// Complete sends one completion request. It makes a single attempt.
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// IsConfigured reports whether a credential is available.
	IsConfigured() bool

	// Model returns the configured model identifier.
	Model() string
}

// PlaceholderResponder produces stand-in answers when no completion
// endpoint is configured.
type PlaceholderResponder interface {
	Respond(ctx context.Context, message string) string
}

// InflightGuard admits at most one pending completion per key.
type InflightGuard interface {
	// Acquire marks key as pending and returns the lease that owns the mark.
	// acquired is false if key is already pending.
	Acquire(ctx context.Context, key string) (lease string, acquired bool, err error)

	// Release clears the pending mark for key if lease still owns it.
	Release(ctx context.Context, key, lease string) error
}

// ProviderCatalog is the read-only source of directory records.
type ProviderCatalog interface {
	// List returns every record in catalog order.
	List(ctx context.Context) ([]ProviderRecord, error)

	// Get returns a record by ID.
	Get(ctx context.Context, id string) (ProviderRecord, error)

	// Specialties returns the distinct specialty tags in catalog order.
	Specialties(ctx context.Context) ([]string, error)
}

// PaymentProcessor settles a checkout quote.
type PaymentProcessor interface {
	Process(ctx context.Context, req *BookingRequest, quote *Quote) (*Booking, error)
}

// EventPublisher publishes events for observability.
type EventPublisher interface {
	// Publish publishes an event with the given type and data.
	Publish(ctx context.Context, eventType string, data map[string]any)
}
