// ABOUTME: Main client for the webtext library providing readable text extraction
// ABOUTME: Offers a clean API over the extraction chain without CLI dependencies

package webtext

import (
	"context"
	"errors"

	coreerrors "webtext/core/errors"
	"webtext/core/extraction"
	"webtext/core/identity"
	"webtext/core/interfaces"
)

// Client is the main entry point for the webtext library
type Client struct {
	service *extraction.Service
	config  Config
}

// NewClient creates a new webtext client with the given options
func NewClient(options ...Option) (*Client, error) {
	// Start with default config
	config := defaultConfig()

	// Apply options
	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	applyOverrides(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	fillDefaults(&config)

	deps := interfaces.Dependencies{
		PrimaryFetcher:   config.PrimaryFetcher,
		AlternateFetcher: config.AlternateFetcher,
		Extractor:        config.Extractor,
		Logger:           config.Logger,
	}

	builder := identity.NewBuilder(
		config.UserAgents,
		config.Referrers,
		config.Settings.Identity.DelayMin,
		config.Settings.Identity.DelayMax,
		config.Rand,
	)

	return &Client{
		service: extraction.NewService(deps, builder, config.Settings.Extraction, config.Sleeper),
		config:  config,
	}, nil
}

// Extract fetches url and returns its readable text.
// It always returns a string; on total failure that string is the sentinel message.
func (c *Client) Extract(ctx context.Context, url string) string {
	return c.service.Extract(ctx, url)
}

// ExtractResult is Extract plus the name of the strategy that produced the text
func (c *Client) ExtractResult(ctx context.Context, url string) *Result {
	extracted := c.service.ExtractResult(ctx, url)
	return &Result{
		Text:       extracted.Text,
		Provenance: string(extracted.Provenance),
		Degraded:   isDegraded(extracted.Provenance),
	}
}

// fillDefaults creates every dependency the options left unset
func fillDefaults(config *Config) {
	settings := config.Settings

	if config.Logger == nil {
		if settings.Log.Quiet {
			config.Logger = QuietLogger()
		} else {
			config.Logger = DefaultLogger(settings.Log.Level)
		}
	}

	if config.PrimaryFetcher == nil {
		config.PrimaryFetcher = DefaultSessionFetcher(settings.Fetch)
	}

	if config.AlternateFetcher == nil {
		config.AlternateFetcher = DefaultAlternateFetcher(settings.Fetch)
	}

	if config.Extractor == nil {
		config.Extractor = DefaultExtractor()
	}
}

// validateConfig validates the client configuration
func validateConfig(config *Config) error {
	if config.Settings == nil {
		return NewError(ErrorTypeConfiguration, "settings are required")
	}

	if err := config.Settings.Validate(); err != nil {
		libErr := NewError(ErrorTypeConfiguration, "invalid settings").WithCause(err)
		var validationErr *coreerrors.ValidationError
		if errors.As(err, &validationErr) {
			libErr = libErr.WithContext("field", validationErr.Field)
		}
		return libErr
	}

	return nil
}
