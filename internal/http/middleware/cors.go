package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/davidbz/lawra/internal/config"
)

// CORS lets the browser front end call the API. The trace and request ID
// headers set by Trace are exposed so the client can quote them in support
// requests; a client-chosen X-Request-Id is allowed on the way in.
func CORS(cfg *config.CORSConfig) Middleware {
	if cfg == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   appendMissing(cfg.AllowedHeaders, requestIDHeader),
		ExposedHeaders:   appendMissing(cfg.ExposedHeaders, traceIDHeader, requestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})

	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}

func appendMissing(headers []string, required ...string) []string {
	out := append([]string(nil), headers...)
	for _, header := range required {
		found := false
		for _, existing := range out {
			if http.CanonicalHeaderKey(existing) == http.CanonicalHeaderKey(header) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, header)
		}
	}
	return out
}
