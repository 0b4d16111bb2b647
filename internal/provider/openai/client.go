// Package openai provides the completion client backed by the official
// OpenAI SDK. It converts domain requests to SDK parameters and classifies
// every failure into a domain.CompletionError.
package openai

import (
	"context"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/davidbz/lawra/internal/domain"
	"github.com/davidbz/lawra/internal/observability"
)

const (
	defaultModel     = "gpt-4o-mini"
	defaultMaxTokens = 1000

	finishReasonLength = "length"
)

// Client implements domain.CompletionClient for OpenAI-compatible endpoints.
type Client struct {
	client     openai.Client
	configured bool
	model      string
	maxTokens  int
}

// NewClient creates a new completion client. A missing API key is not an
// error: the client is built but reports IsConfigured() == false.
func NewClient(config Config) *Client {
	opts := []option.RequestOption{
		// One attempt per call.
		option.WithMaxRetries(0),
	}

	if config.APIKey != "" {
		opts = append(opts, option.WithAPIKey(config.APIKey))
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	model := config.Model
	if model == "" {
		model = defaultModel
	}

	maxTokens := config.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	return &Client{
		client:     openai.NewClient(opts...),
		configured: config.APIKey != "",
		model:      model,
		maxTokens:  maxTokens,
	}
}

// IsConfigured reports whether an API key was supplied.
func (c *Client) IsConfigured() bool {
	return c.configured
}

// Model returns the configured default model.
func (c *Client) Model() string {
	return c.model
}

// Complete sends a completion request and returns the trimmed answer.
func (c *Client) Complete(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, &domain.CompletionError{
			Kind:    domain.KindBadRequest,
			Message: "Invalid request: request cannot be nil",
		}
	}

	if !c.configured {
		return nil, &domain.CompletionError{
			Kind:    domain.KindNotConfigured,
			Message: "The AI service is not configured.",
		}
	}

	params := c.toSDKParams(req)

	ctx = observability.WithModel(ctx, string(params.Model))
	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI API",
		observability.Int("messages", len(params.Messages)),
	)

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		completionErr := classifyError(err, string(params.Model))
		logger.Error("OpenAI API call failed",
			observability.String("kind", string(completionErr.Kind)),
			observability.Int("status", completionErr.StatusCode),
			observability.Error(err),
		)
		return nil, completionErr
	}

	logger.Debug("OpenAI API call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return toDomainResponse(resp)
}

// toSDKParams converts a domain request to SDK ChatCompletionNewParams.
func (c *Client) toSDKParams(req *domain.CompletionRequest) openai.ChatCompletionNewParams {
	turns := req.Messages()
	messages := make([]openai.ChatCompletionMessageParamUnion, len(turns))
	for i, turn := range turns {
		switch turn.Role {
		case domain.RoleAssistant:
			messages[i] = openai.AssistantMessage(turn.Content)
		case domain.RoleSystem:
			messages[i] = openai.SystemMessage(turn.Content)
		default:
			messages[i] = openai.UserMessage(turn.Content)
		}
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = c.maxTokens
	}

	//nolint:exhaustruct // OpenAI SDK struct has many optional fields
	return openai.ChatCompletionNewParams{
		Model:               openai.ChatModel(model),
		Messages:            messages,
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
	}
}

// toDomainResponse reads the first choice. Empty text is a failure.
func toDomainResponse(resp *openai.ChatCompletion) (*domain.CompletionResponse, error) {
	var content, finishReason string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
		finishReason = resp.Choices[0].FinishReason
	}

	text := strings.TrimSpace(content)
	if text == "" {
		if finishReason == finishReasonLength {
			return nil, &domain.CompletionError{
				Kind: domain.KindResponseTooLong,
				Message: "The answer was too long. Please ask a shorter question " +
					"or split it into several questions.",
			}
		}
		return nil, &domain.CompletionError{
			Kind:    domain.KindEmptyResponse,
			Message: "No answer was received from the AI. Please try again.",
		}
	}

	return &domain.CompletionResponse{
		ID:           resp.ID,
		Model:        string(resp.Model),
		Text:         text,
		FinishReason: finishReason,
		Usage: domain.Usage{
			PromptTokens:     int(resp.Usage.PromptTokens),
			CompletionTokens: int(resp.Usage.CompletionTokens),
			TotalTokens:      int(resp.Usage.TotalTokens),
		},
		FinishTime: time.Now(),
	}, nil
}
