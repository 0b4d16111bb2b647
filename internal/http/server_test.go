package http //nolint:testpackage // Need access to the unexported http.Server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/lawra/internal/config"
	"github.com/davidbz/lawra/internal/http/middleware"
)

func TestNewServer_WriteTimeout(t *testing.T) {
	t.Run("should not cut off a reply before the completion timeout", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Server.Port = 8080
		cfg.Server.ReadTimeout = 30
		cfg.Server.WriteTimeout = 30
		cfg.OpenAI.Timeout = 60

		server := NewServer(cfg, NewHandler(nil, nil, nil), middleware.Chain())

		require.Greater(t, server.srv.WriteTimeout, 60*time.Second)
		require.Equal(t, 30*time.Second, server.srv.ReadTimeout)
	})
}
