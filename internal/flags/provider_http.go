package flags

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPProvider fetches the flag document from a JSON endpoint.
// The document is a flat object: {"flag-name": value, ...}.
type HTTPProvider struct {
	url    string
	client *http.Client
}

// NewHTTPProvider creates a provider for the given flag document URL.
// The timeout bounds the single startup fetch.
func NewHTTPProvider(url string, timeout time.Duration) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProvider) Fetch(ctx context.Context) (Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build flag request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch flags: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch flags: unexpected status %d", resp.StatusCode)
	}

	var set Set
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("decode flag document: %w", err)
	}
	return set, nil
}
