// Package request provides middleware that assigns a correlation ID to every
// request. Handlers and services log the ID so a decision can be traced
// across the middleware chain, the resolver, and the audit trail.
package request

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"filings-gateway/pkg/requestcontext"
)

// Header carries the inbound correlation ID when a gateway already set one.
const Header = "X-Request-Id"

// Middleware reuses the inbound X-Request-Id or generates a fresh UUID, then
// stores it in the context and echoes it on the response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		w.Header().Set(Header, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	return requestcontext.RequestID(ctx)
}
