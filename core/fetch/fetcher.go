// Package fetch implements the Fetcher interface.
// It performs HTTP GET requests against the registrar site and reports a
// missing page as an explicit absence rather than an error condition the
// caller has to parse out of a status code.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/johnny-y-wang/fireroad-server/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "FireRoadCatalogBot/1.0"
)

// ErrNotFound signals that the requested catalog page does not exist.
// Department suffix pages are probed speculatively, so this is an expected
// outcome, not a failure of the run.
var ErrNotFound = errors.New("page not found")

// HTTPFetcher fetches catalog pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch retrieves the HTML content of the given URL. Any non-200 response
// is treated as a missing page, matching the registrar's behavior of
// serving either a full listing page or nothing.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.FetchResult{
		URL:        url,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}
