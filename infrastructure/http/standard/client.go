// ABOUTME: Standard HTTP client implementation with retry logic and timeout support
// ABOUTME: Sends caller supplied browser headers and backs off on transient server errors

package standard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"webtext/core/interfaces"
)

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client      *http.Client
	maxAttempts int
}

// NewStandardHTTPClient creates a new HTTP client with the specified timeout.
// maxAttempts includes the initial request; values below 1 mean a single attempt.
func NewStandardHTTPClient(timeout time.Duration, maxAttempts int) *StandardHTTPClient {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &StandardHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		maxAttempts: maxAttempts,
	}
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	// Perform request with retry logic
	var resp *http.Response
	var lastErr error

	for attempt := 0; attempt < c.maxAttempts; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 100ms, 200ms, 400ms
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err = c.client.Do(req)
		if err != nil {
			resp = nil
			lastErr = err
			continue
		}

		// Don't retry on success or 4xx errors
		if resp.StatusCode < 500 || attempt == c.maxAttempts-1 {
			break
		}

		// Close body for retry
		resp.Body.Close()
		lastErr = fmt.Errorf("server returned %d", resp.StatusCode)
		resp = nil
	}

	if resp == nil {
		return nil, lastErr
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
