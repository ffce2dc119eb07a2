// Package core contains the extraction logic for webtext.
// It is designed to be framework-agnostic and can be used independently
// of any transport, parser library or logging backend.
//
// The core package is organized into several sub-packages:
//
// - domain: Request identity, raw downloads and extracted text
// - extraction: The ordered strategy chain and the marketplace heuristic
// - identity: Simulated browser identities and pre-request delays
// - errors: Custom error types for fetch, extraction and validation failures
// - interfaces: Contracts for external dependencies (fetchers, extractor, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Errors stay inside the chain and become fall-throughs
//
// # Usage Example
//
//	import (
//	    "webtext/core/extraction"
//	    "webtext/core/identity"
//	    "webtext/core/interfaces"
//	    "webtext/pkg/config"
//	)
//
//	cfg := config.Default()
//
//	deps := interfaces.Dependencies{
//	    PrimaryFetcher:   mySessionFetcher,   // implements interfaces.Fetcher
//	    AlternateFetcher: myAlternateFetcher, // implements interfaces.Fetcher
//	    Extractor:        myExtractor,        // implements interfaces.ContentExtractor
//	    Logger:           myLogger,           // implements interfaces.Logger
//	}
//
//	builder := identity.NewBuilder(nil, nil, cfg.Identity.DelayMin, cfg.Identity.DelayMax, nil)
//	service := extraction.NewService(deps, builder, cfg.Extraction, nil)
//
//	text := service.Extract(ctx, "https://example.com/article")
package core
