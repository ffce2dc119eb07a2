package extraction

import (
	"context"
	"sync"
	"time"

	"webtext/core/domain"
)

// mockFetcher is a mock implementation of the Fetcher interface
type mockFetcher struct {
	fetchFunc func(ctx context.Context, reqCtx domain.RequestContext) (*domain.RawDownload, error)
	calls     int
}

func (m *mockFetcher) Fetch(ctx context.Context, reqCtx domain.RequestContext) (*domain.RawDownload, error) {
	m.calls++
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, reqCtx)
	}
	return nil, nil
}

func bodyFetcher(source, body string) *mockFetcher {
	return &mockFetcher{
		fetchFunc: func(_ context.Context, reqCtx domain.RequestContext) (*domain.RawDownload, error) {
			return &domain.RawDownload{URL: reqCtx.URL, Body: body, StatusCode: 200, Source: source}, nil
		},
	}
}

func failingFetcher(err error) *mockFetcher {
	return &mockFetcher{
		fetchFunc: func(context.Context, domain.RequestContext) (*domain.RawDownload, error) {
			return nil, err
		},
	}
}

// mockExtractor is a mock implementation of the ContentExtractor interface
type mockExtractor struct {
	extractFunc func(raw *domain.RawDownload) (string, error)
	calls       int
}

func (m *mockExtractor) Extract(raw *domain.RawDownload) (string, error) {
	m.calls++
	if m.extractFunc != nil {
		return m.extractFunc(raw)
	}
	return "", nil
}

// textBySource returns canned text per download source
func textBySource(texts map[string]string) *mockExtractor {
	return &mockExtractor{
		extractFunc: func(raw *domain.RawDownload) (string, error) {
			return texts[raw.Source], nil
		},
	}
}

// mockLogger records every message
type mockLogger struct {
	mu       sync.Mutex
	messages []string
	fields   []map[string]interface{}
}

func (m *mockLogger) record(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, level+": "+msg)
	m.fields = append(m.fields, fields)
}

// fieldsOf returns the fields of every entry logged with the given level and message
func (m *mockLogger) fieldsOf(entry string) []map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found []map[string]interface{}
	for i, msg := range m.messages {
		if msg == entry {
			found = append(found, m.fields[i])
		}
	}
	return found
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.record("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.record("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.record("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.record("error", msg, fields) }

// recordingSleeper captures requested delays without sleeping
type recordingSleeper struct {
	delays []time.Duration
}

func (r *recordingSleeper) sleep(_ context.Context, d time.Duration) {
	r.delays = append(r.delays, d)
}
