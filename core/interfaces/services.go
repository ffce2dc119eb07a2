// ABOUTME: Service interfaces for the extraction chain
// ABOUTME: Defines contracts for page acquisition and readable text extraction

package interfaces

import (
	"context"

	"webtext/core/domain"
)

// Fetcher acquires the raw body of a page.
// A nil download with a non-nil error means the attempt failed.
type Fetcher interface {
	Fetch(ctx context.Context, reqCtx domain.RequestContext) (*domain.RawDownload, error)
}

// ContentExtractor turns raw HTML into the readable main text of the page.
// An empty string with a nil error means nothing readable was found.
type ContentExtractor interface {
	Extract(raw *domain.RawDownload) (string, error)
}
