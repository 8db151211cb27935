// Package requestcontext provides HTTP-independent context accessors for
// request-scoped values.
//
// Middleware sets the values; services read them. Keeping this package free of
// net/http lets services import only what they need.
//
// Usage in services (read values):
//
//	roles := requestcontext.Roles(ctx)
//	businessID := requestcontext.BusinessID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithRoles(ctx, roles)
//	ctx = requestcontext.WithRequestID(ctx, requestID)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
//	ctx = requestcontext.WithBusinessID(ctx, "BC1234567")
package requestcontext

import (
	"context"
	"time"
)

// Context key types (unexported for encapsulation).
type (
	accountIDKey   struct{}
	rolesKey       struct{}
	businessIDKey  struct{}
	routeNameKey   struct{}
	clientIPKey    struct{}
	userAgentKey   struct{}
	deviceKey      struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyAccountID   = accountIDKey{}
	ContextKeyRoles       = rolesKey{}
	ContextKeyBusinessID  = businessIDKey{}
	ContextKeyRouteName   = routeNameKey{}
	ContextKeyClientIP    = clientIPKey{}
	ContextKeyUserAgent   = userAgentKey{}
	ContextKeyDevice      = deviceKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// -----------------------------------------------------------------------------
// Auth context (account, roles)
// -----------------------------------------------------------------------------

// AccountID retrieves the authenticated account ID from the context.
// Returns "" for anonymous requests.
func AccountID(ctx context.Context) string {
	if accountID, ok := ctx.Value(ContextKeyAccountID).(string); ok {
		return accountID
	}
	return ""
}

// WithAccountID injects an account ID into the context.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, ContextKeyAccountID, accountID)
}

// Roles retrieves the authorization roles from the context.
// Returns nil for anonymous requests; callers treat nil as no roles.
func Roles(ctx context.Context) []string {
	if roles, ok := ctx.Value(ContextKeyRoles).([]string); ok {
		return roles
	}
	return nil
}

// WithRoles injects authorization roles into the context.
func WithRoles(ctx context.Context, roles []string) context.Context {
	return context.WithValue(ctx, ContextKeyRoles, roles)
}

// -----------------------------------------------------------------------------
// Business context
// -----------------------------------------------------------------------------

// BusinessID retrieves the loaded business identifier from the context.
// Returns "" when no business is loaded; resolvers treat that as "deny"
// for any action that requires a loaded business.
func BusinessID(ctx context.Context) string {
	if businessID, ok := ctx.Value(ContextKeyBusinessID).(string); ok {
		return businessID
	}
	return ""
}

// WithBusinessID injects the loaded business identifier into the context.
func WithBusinessID(ctx context.Context, businessID string) context.Context {
	return context.WithValue(ctx, ContextKeyBusinessID, businessID)
}

// RouteName retrieves the matched route name from the context.
// Used by eligibility rules that exclude the route a user is already on.
func RouteName(ctx context.Context) string {
	if route, ok := ctx.Value(ContextKeyRouteName).(string); ok {
		return route
	}
	return ""
}

// WithRouteName injects the matched route name into the context.
func WithRouteName(ctx context.Context, route string) context.Context {
	return context.WithValue(ctx, ContextKeyRouteName, route)
}

// -----------------------------------------------------------------------------
// Client metadata (IP, User-Agent, device summary)
// -----------------------------------------------------------------------------

// ClientIP retrieves the client IP address from the context.
func ClientIP(ctx context.Context) string {
	if ip, ok := ctx.Value(ContextKeyClientIP).(string); ok {
		return ip
	}
	return ""
}

// UserAgent retrieves the raw User-Agent from the context.
func UserAgent(ctx context.Context) string {
	if ua, ok := ctx.Value(ContextKeyUserAgent).(string); ok {
		return ua
	}
	return ""
}

// Device retrieves the parsed device summary (browser/OS) from the context.
func Device(ctx context.Context) string {
	if d, ok := ctx.Value(ContextKeyDevice).(string); ok {
		return d
	}
	return ""
}

// WithClientMetadata injects client IP, User-Agent and device summary into a
// context. Useful for service unit tests that skip the HTTP middleware chain.
func WithClientMetadata(ctx context.Context, clientIP, userAgent, device string) context.Context {
	ctx = context.WithValue(ctx, ContextKeyClientIP, clientIP)
	ctx = context.WithValue(ctx, ContextKeyUserAgent, userAgent)
	ctx = context.WithValue(ctx, ContextKeyDevice, device)
	return ctx
}

// -----------------------------------------------------------------------------
// Request metadata
// -----------------------------------------------------------------------------

// RequestID retrieves the request ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// -----------------------------------------------------------------------------
// Request time
// -----------------------------------------------------------------------------

// Now retrieves the request-scoped time from context.
// Falls back to time.Now() for non-HTTP contexts (workers, tests).
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
