package auth

import (
	"log/slog"
	"net/http"
	"strings"

	request "filings-gateway/pkg/platform/middleware/request"
	"filings-gateway/pkg/requestcontext"
)

// Known authorization roles. Staff unlocks corrections, notations and
// comment endpoints in the eligibility rules; edit/view scope ordinary users.
const (
	RoleStaff = "staff"
	RoleEdit  = "edit"
	RoleView  = "view"
)

// TokenValidator validates a bearer token and returns the roles it carries.
type TokenValidator interface {
	ValidateToken(tokenString string) (*TokenClaims, error)
}

// TokenClaims represents the claims expected from the token validator.
type TokenClaims struct {
	AccountID string
	Roles     []string
}

// IdentifyRoles resolves the caller's roles from a bearer token and stores
// them in the context. Requests without a token (or with an invalid one)
// proceed anonymously: eligibility reads are public, and staff-gated
// decisions simply come back denied when no staff role is present.
func IdentifyRoles(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			authHeader := r.Header.Get("Authorization")
			const bearerPrefix = "Bearer "
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
			if err != nil {
				if logger != nil {
					logger.DebugContext(ctx, "bearer token rejected, continuing anonymously",
						"request_id", request.GetRequestID(ctx),
						"error", err,
					)
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx = requestcontext.WithAccountID(ctx, claims.AccountID)
			ctx = requestcontext.WithRoles(ctx, claims.Roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HasRole reports whether the role set includes the given role.
func HasRole(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
