package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lawra/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 90, cfg.Server.WriteTimeout)
		require.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
		require.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
		require.Equal(t, 1000, cfg.OpenAI.MaxTokens)
		require.Equal(t, 60, cfg.OpenAI.Timeout)
		require.Empty(t, cfg.OpenAI.APIKey)
		require.True(t, cfg.Chat.DemoFallback)
		require.Empty(t, cfg.Inflight.RedisAddr)
		require.Equal(t, 2*time.Minute, cfg.Inflight.TTL)
		require.Empty(t, cfg.Directory.SeedPath)
		require.InDelta(t, 0.05, cfg.Checkout.ServiceFeeRate, 1e-9)
		require.Equal(t, 3*time.Second, cfg.Checkout.SimulatedDelay)
		require.InDelta(t, 5.0, cfg.RateLimit.RPS, 1e-9)
		require.Equal(t, 10, cfg.RateLimit.Burst)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("SERVER_READ_TIMEOUT", "60")
		t.Setenv("SERVER_WRITE_TIMEOUT", "60")
		t.Setenv("OPENAI_API_KEY", "sk-test-key")
		t.Setenv("OPENAI_BASE_URL", "https://test.openai.com")
		t.Setenv("OPENAI_MODEL", "gpt-4o")
		t.Setenv("OPENAI_MAX_TOKENS", "500")
		t.Setenv("OPENAI_TIMEOUT", "120")
		t.Setenv("CHAT_DEMO_FALLBACK", "false")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("INFLIGHT_TTL", "30s")
		t.Setenv("CHECKOUT_SIMULATED_DELAY", "250ms")
		t.Setenv("RATE_LIMIT_RPS", "0")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, 60, cfg.Server.ReadTimeout)
		require.Equal(t, 60, cfg.Server.WriteTimeout)
		require.Equal(t, "sk-test-key", cfg.OpenAI.APIKey)
		require.Equal(t, "https://test.openai.com", cfg.OpenAI.BaseURL)
		require.Equal(t, "gpt-4o", cfg.OpenAI.Model)
		require.Equal(t, 500, cfg.OpenAI.MaxTokens)
		require.Equal(t, 120, cfg.OpenAI.Timeout)
		require.False(t, cfg.Chat.DemoFallback)
		require.Equal(t, "localhost:6379", cfg.Inflight.RedisAddr)
		require.Equal(t, 30*time.Second, cfg.Inflight.TTL)
		require.Equal(t, 250*time.Millisecond, cfg.Checkout.SimulatedDelay)
		require.Zero(t, cfg.RateLimit.RPS)
	})
}

func TestConfig_WriteTimeout(t *testing.T) {
	t.Run("should outlast the completion timeout by default", func(t *testing.T) {
		os.Clearenv()

		cfg := config.Load()

		require.Greater(t, cfg.WriteTimeout(), time.Duration(cfg.OpenAI.Timeout)*time.Second)
		require.Equal(t, 90*time.Second, cfg.WriteTimeout())
	})

	t.Run("should raise a write timeout shorter than the completion timeout", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.WriteTimeout = 30
		cfg.OpenAI.Timeout = 60

		require.Equal(t, 90*time.Second, cfg.WriteTimeout())
	})

	t.Run("should keep a longer configured write timeout", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.WriteTimeout = 300
		cfg.OpenAI.Timeout = 60

		require.Equal(t, 300*time.Second, cfg.WriteTimeout())
	})
}
