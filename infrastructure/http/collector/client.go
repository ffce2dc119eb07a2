// ABOUTME: Alternate fetcher built on a colly collector
// ABOUTME: Re-downloads a page with its own fixed identity and an explicit timeout

package collector

import (
	"context"
	"time"

	"webtext/core/domain"
	coreerrors "webtext/core/errors"

	"github.com/gocolly/colly"
)

// AlternateSource tags downloads produced by the collector
const AlternateSource = "alternate"

// CollectorFetcher implements interfaces.Fetcher with a fresh colly collector per call.
// It ignores the browser headers of the request context and sends only its own user agent.
type CollectorFetcher struct {
	userAgent   string
	timeout     time.Duration
	maxBodySize int
}

// NewCollectorFetcher creates a fetcher; timeout must be finite
func NewCollectorFetcher(userAgent string, timeout time.Duration, maxBodySize int) *CollectorFetcher {
	return &CollectorFetcher{
		userAgent:   userAgent,
		timeout:     timeout,
		maxBodySize: maxBodySize,
	}
}

// Fetch visits reqCtx.URL and returns the raw response body
func (f *CollectorFetcher) Fetch(ctx context.Context, reqCtx domain.RequestContext) (*domain.RawDownload, error) {
	if err := ctx.Err(); err != nil {
		return nil, &coreerrors.FetchError{Strategy: AlternateSource, URL: reqCtx.URL, Err: err}
	}

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.MaxBodySize(f.maxBodySize),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.timeout)

	var raw *domain.RawDownload
	var status int

	c.OnResponse(func(r *colly.Response) {
		raw = &domain.RawDownload{
			URL:         reqCtx.URL,
			Body:        string(r.Body),
			ContentType: r.Headers.Get("Content-Type"),
			StatusCode:  r.StatusCode,
			Source:      AlternateSource,
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	if err := c.Visit(reqCtx.URL); err != nil {
		return nil, &coreerrors.FetchError{Strategy: AlternateSource, URL: reqCtx.URL, StatusCode: status, Err: err}
	}

	if raw == nil {
		return nil, &coreerrors.FetchError{Strategy: AlternateSource, URL: reqCtx.URL, Err: errNoResponse}
	}

	return raw, nil
}
