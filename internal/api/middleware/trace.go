package middleware

import (
	"log/slog"
	"net/http"

	"github.com/kelist/kelist-api/internal/api/shared"
	"github.com/kelist/kelist-api/internal/platform/logger"
)

// TraceMiddleware assigns a trace ID to the request and attaches a
// request-scoped logger carrying it to the context. Apply it early in the
// chain so every downstream handler, service and store log line shares the
// same correlation ID.
func TraceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.Default().With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
