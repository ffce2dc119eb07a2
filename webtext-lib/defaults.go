// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for the fetchers, extractor and logger the client wires by default

package webtext

import (
	"webtext/core/interfaces"
	"webtext/infrastructure/http/collector"
	"webtext/infrastructure/http/standard"
	"webtext/infrastructure/logger/structured"
	"webtext/infrastructure/readability"
	"webtext/pkg/config"
)

// DefaultSessionFetcher creates the browser-like fetcher used by the first strategy
func DefaultSessionFetcher(settings config.FetchConfig) interfaces.Fetcher {
	httpClient := standard.NewStandardHTTPClient(settings.SessionTimeout, settings.MaxAttempts)
	return standard.NewSessionFetcher(httpClient, settings.MaxBodySize)
}

// DefaultAlternateFetcher creates the independent collector used by the second strategy
func DefaultAlternateFetcher(settings config.FetchConfig) interfaces.Fetcher {
	return collector.NewCollectorFetcher(settings.AlternateUserAgent, settings.AlternateTimeout, settings.MaxBodySize)
}

// DefaultExtractor creates the readability based content extractor
func DefaultExtractor() interfaces.ContentExtractor {
	return readability.NewExtractor()
}

// DefaultLogger creates a structured logger writing to stderr
func DefaultLogger(level string) interfaces.Logger {
	return structured.NewLogger(level)
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return structured.NewQuietLogger()
}
