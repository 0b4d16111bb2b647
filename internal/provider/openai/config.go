package openai

// Config contains OpenAI completion client configuration.
// All fields map to OpenAI SDK options or request parameters:
//   - APIKey: Maps to option.WithAPIKey(); empty leaves the client unconfigured
//   - BaseURL: Maps to option.WithBaseURL()
//   - Model: Default model for requests that do not name one
//   - MaxTokens: Default max_completion_tokens
//   - Timeout: Maps to option.WithRequestTimeout() (in seconds)
type Config struct {
	APIKey    string `env:"OPENAI_API_KEY"`
	BaseURL   string `env:"OPENAI_BASE_URL"   envDefault:"https://api.openai.com/v1"`
	Model     string `env:"OPENAI_MODEL"      envDefault:"gpt-4o-mini"`
	MaxTokens int    `env:"OPENAI_MAX_TOKENS" envDefault:"1000"`
	Timeout   int    `env:"OPENAI_TIMEOUT"    envDefault:"60"`
}
