package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DocumentFetcher retrieves a raw catalog document from a resource location.
// Timeouts and cancellation are the fetcher's responsibility.
type DocumentFetcher interface {
	FetchDocument(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches catalog documents over plain HTTP GET.
type HTTPFetcher struct {
	Client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with a sane default timeout.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: 10 * time.Second}}
}

// FetchDocument performs the GET and returns the response body. A non-2xx
// status is the only transport-level error signal recognized.
func (f *HTTPFetcher) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog request: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("failed to fetch catalog document: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog document: %w", err)
	}
	return body, nil
}
