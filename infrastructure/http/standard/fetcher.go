// ABOUTME: Session fetcher that downloads a page with the simulated browser identity
// ABOUTME: Decodes content encodings and charsets so extractors always receive UTF-8 text

package standard

import (
	"compress/gzip"
	"compress/zlib"
	"context"
	"fmt"
	"io"
	"strings"

	"webtext/core/domain"
	coreerrors "webtext/core/errors"
	"webtext/core/interfaces"

	"golang.org/x/net/html/charset"
)

// SessionSource tags downloads produced by the session fetcher
const SessionSource = "session"

// SessionFetcher implements interfaces.Fetcher on top of an HTTPClient
type SessionFetcher struct {
	client      interfaces.HTTPClient
	maxBodySize int64
}

// NewSessionFetcher creates a fetcher that reads at most maxBodySize bytes per page
func NewSessionFetcher(client interfaces.HTTPClient, maxBodySize int) *SessionFetcher {
	return &SessionFetcher{
		client:      client,
		maxBodySize: int64(maxBodySize),
	}
}

// Fetch downloads reqCtx.URL sending every header of the request context
func (f *SessionFetcher) Fetch(ctx context.Context, reqCtx domain.RequestContext) (*domain.RawDownload, error) {
	resp, err := f.client.Get(ctx, reqCtx.URL, reqCtx.Headers)
	if err != nil {
		return nil, &coreerrors.FetchError{Strategy: SessionSource, URL: reqCtx.URL, Err: err}
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.FetchError{Strategy: SessionSource, URL: reqCtx.URL, StatusCode: resp.StatusCode()}
	}

	contentType := resp.Header("Content-Type")
	text, err := f.readBody(body, resp.Header("Content-Encoding"), contentType)
	if err != nil {
		return nil, &coreerrors.FetchError{Strategy: SessionSource, URL: reqCtx.URL, Err: err}
	}

	return &domain.RawDownload{
		URL:         reqCtx.URL,
		Body:        text,
		ContentType: contentType,
		StatusCode:  resp.StatusCode(),
		Source:      SessionSource,
	}, nil
}

// readBody undoes the content encoding we advertised and converts the charset to UTF-8
func (f *SessionFetcher) readBody(body io.Reader, contentEncoding, contentType string) (string, error) {
	var reader io.Reader = body
	switch strings.ToLower(strings.TrimSpace(contentEncoding)) {
	case "gzip", "x-gzip":
		gz, err := gzip.NewReader(body)
		if err != nil {
			return "", fmt.Errorf("open gzip body: %w", err)
		}
		defer gz.Close()
		reader = gz
	case "deflate":
		zr, err := zlib.NewReader(body)
		if err != nil {
			return "", fmt.Errorf("open deflate body: %w", err)
		}
		defer zr.Close()
		reader = zr
	}

	reader = io.LimitReader(reader, f.maxBodySize)

	utf8Reader, err := charset.NewReader(reader, contentType)
	if err != nil {
		return "", fmt.Errorf("decode charset: %w", err)
	}

	data, err := io.ReadAll(utf8Reader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(data), nil
}
