// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as HTTP acquisition, HTML parsing and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: net/http session fetcher with browser headers and charset decoding
// - http/collector: gocolly based alternate fetcher
// - readability: goquery pruning plus go-readability article extraction
// - logger/structured: logrus backed structured logger
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration values at construction
// - Testable: Exercised against httptest servers and in-memory fixtures
package infrastructure
