// Package core defines the pipeline interfaces and shared data model for
// the catalog parser. Each stage of the pipeline is a clean, testable
// interface or a pure function over these types.
package core

import (
	"context"

	"golang.org/x/net/html"
)

// FetchResult holds the raw page markup and response metadata from a fetch.
// Carrying the raw source here, rather than in package-level state, keeps
// page retrieval safe to parallelize.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML for a catalog page URL. A missing page is
// reported as fetch.ErrNotFound, never as a partial result.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// InfoItem is one candidate string extracted from a subject's markup,
// consumed exactly once by the attribute classifier.
type InfoItem string

// SubjectRegion is a subject identifier plus the markup subtrees that
// belong to it, as determined by anchor/heading segmentation. A region
// with no roots is a placeholder resolved by autofill.
type SubjectRegion struct {
	ID    string
	Roots []*html.Node
}

// Renderer converts one department's parsed courses into an additional
// output format (Markdown, JSON, PDF). The flat-file writer is separate
// because its format is a bit-exact contract.
type Renderer interface {
	Render(department string, courses []Course) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md").
	Extension() string
}
