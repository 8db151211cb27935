// Package routename captures the caller's current UI route. The digital
// credentials decision excludes the credentials page from linking to itself,
// so the client reports where it is via a header.
package routename

import (
	"net/http"

	"filings-gateway/pkg/requestcontext"
)

// Header carries the client's matched route name.
const Header = "X-Route-Name"

// Middleware stores the reported route name in the request context. Absent
// header means no route context, which is fine for non-UI callers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if name := r.Header.Get(Header); name != "" {
			r = r.WithContext(requestcontext.WithRouteName(r.Context(), name))
		}
		next.ServeHTTP(w, r)
	})
}
