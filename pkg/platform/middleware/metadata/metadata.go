// Package metadata extracts client metadata (IP, User-Agent, device summary)
// from the request and stores it in the context for audit enrichment.
package metadata

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/mssola/useragent"

	"filings-gateway/pkg/requestcontext"
)

// ClientMetadata extracts client IP address, User-Agent, and a parsed device
// summary from the request and adds them to the context.
// This middleware should be applied early in the chain.
func ClientMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIPFromRequest(r)
		ua := r.Header.Get("User-Agent")

		ctx := requestcontext.WithClientMetadata(r.Context(), ip, ua, DeviceSummary(ua))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClientIPFromRequest extracts the real client IP from the request, handling
// proxies and load balancers.
func ClientIPFromRequest(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs (client, proxy1, proxy2, ...);
	// the first is the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-Ip"); xri != "" {
		return strings.TrimSpace(xri)
	}

	// RemoteAddr is host:port
	addr := r.RemoteAddr
	if idx := strings.LastIndex(addr, ":"); idx != -1 {
		return addr[:idx]
	}
	return addr
}

// DeviceSummary condenses a raw User-Agent into "Browser/Version (OS)" for
// audit events. Returns "" for an empty User-Agent.
func DeviceSummary(rawUA string) string {
	if rawUA == "" {
		return ""
	}
	ua := useragent.New(rawUA)
	name, version := ua.Browser()
	if name == "" {
		return rawUA
	}
	if os := ua.OS(); os != "" {
		return fmt.Sprintf("%s/%s (%s)", name, version, os)
	}
	return fmt.Sprintf("%s/%s", name, version)
}
