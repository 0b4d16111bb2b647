package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/davidbz/lawra/internal/observability"
)

const (
	traceIDHeader   = "X-Trace-Id"
	requestIDHeader = "X-Request-Id"
)

// statusRecorder captures the status code written by the handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// Trace tags every request with trace, span and request IDs and logs its
// outcome. A client X-Request-Id is kept when it is a UUID so a retried
// chat submission can be matched to the first attempt in the logs.
func Trace() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ctx := r.Context()

			traceID := observability.GenerateTraceID()
			ctx = observability.WithTraceID(ctx, traceID)
			ctx = observability.WithSpanID(ctx, observability.GenerateSpanID())

			requestID := clientRequestID(r)
			if requestID == "" {
				requestID = observability.GenerateRequestID()
			}
			ctx = observability.WithRequestID(ctx, requestID)

			w.Header().Set(traceIDHeader, traceID)
			w.Header().Set(requestIDHeader, requestID)

			logger := observability.FromContext(ctx)
			logger.Info("request started",
				observability.String("method", r.Method),
				observability.String("path", r.URL.Path),
				observability.String("remote_addr", r.RemoteAddr),
			)

			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r.WithContext(ctx))

			logger.Info("request completed",
				observability.Int("status", recorder.status),
				observability.Duration("duration", time.Since(started)),
			)
		})
	}
}

func clientRequestID(r *http.Request) string {
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		return ""
	}
	if _, err := uuid.Parse(id); err != nil {
		return ""
	}
	return id
}
