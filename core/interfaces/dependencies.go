// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the extraction chain

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// PrimaryFetcher performs the browser-like session fetch
	PrimaryFetcher Fetcher

	// AlternateFetcher re-fetches the page with a different client configuration
	AlternateFetcher Fetcher

	// Extractor provides generic main-content extraction
	Extractor ContentExtractor

	// Logger provides structured logging
	Logger Logger
}
