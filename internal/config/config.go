package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/lawra/internal/checkout"
	"github.com/davidbz/lawra/internal/directory"
	"github.com/davidbz/lawra/internal/inflight"
	"github.com/davidbz/lawra/internal/provider/openai"
)

// Config represents the service configuration.
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Chat      ChatConfig
	OpenAI    openai.Config
	Inflight  inflight.Config
	Directory directory.Config
	Checkout  checkout.Config
}

// writeTimeoutMargin is the headroom a chat reply gets after the slowest
// completion the client allows.
const writeTimeoutMargin = 30 * time.Second

// ServerConfig contains HTTP server settings. WriteTimeout must exceed
// OPENAI_TIMEOUT or a slow completion finishes after the response deadline
// and the client sees a dropped connection; see Config.WriteTimeout.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"90"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	ExposedHeaders   []string `env:"CORS_EXPOSED_HEADERS"   envSeparator:","`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// RateLimitConfig contains per-client request limits. RPS 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"5"`
	Burst int     `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// ChatConfig contains chat behaviour settings.
type ChatConfig struct {
	DemoFallback bool `env:"CHAT_DEMO_FALLBACK" envDefault:"true"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server    *ServerConfig
	CORS      *CORSConfig
	RateLimit *RateLimitConfig
	Chat      *ChatConfig
	OpenAI    *openai.Config
	Inflight  *inflight.Config
	Directory *directory.Config
	Checkout  *checkout.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// WriteTimeout returns the HTTP write deadline, raised to the completion
// timeout plus writeTimeoutMargin when SERVER_WRITE_TIMEOUT is shorter.
func (c *Config) WriteTimeout() time.Duration {
	configured := time.Duration(c.Server.WriteTimeout) * time.Second
	floor := time.Duration(c.OpenAI.Timeout)*time.Second + writeTimeoutMargin

	if configured < floor {
		return floor
	}
	return configured
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:       dig.Out{},
		Server:    &cfg.Server,
		CORS:      &cfg.CORS,
		RateLimit: &cfg.RateLimit,
		Chat:      &cfg.Chat,
		OpenAI:    &cfg.OpenAI,
		Inflight:  &cfg.Inflight,
		Directory: &cfg.Directory,
		Checkout:  &cfg.Checkout,
	}
}
