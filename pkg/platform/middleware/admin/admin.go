package admin

import (
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	request "filings-gateway/pkg/platform/middleware/request"
)

// RequireAdminKey guards operational endpoints (snapshot reload, draft purge)
// behind a shared admin key. The config holds only the bcrypt hash of the key,
// never the plaintext.
func RequireAdminKey(keyHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-Admin-Key")
			if keyHash == "" || bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(key)) != nil {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin key mismatch",
					"request_id", request.GetRequestID(ctx),
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"admin key required"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
