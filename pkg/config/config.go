// ABOUTME: Configuration for the extraction chain and its adapters
// ABOUTME: Defines timeouts, identity delay range, thresholds and log settings with validation

package config

import (
	"time"

	coreerrors "webtext/core/errors"
)

// Config holds all application configuration
type Config struct {
	// Fetch contains HTTP acquisition settings for both fetch strategies
	Fetch FetchConfig

	// Identity contains the simulated browser identity settings
	Identity IdentityConfig

	// Extraction contains the meaningfulness thresholds
	Extraction ExtractionConfig

	// Log contains logging settings
	Log LogConfig
}

// FetchConfig holds HTTP acquisition configuration
type FetchConfig struct {
	// SessionTimeout bounds the primary browser-like fetch
	SessionTimeout time.Duration

	// AlternateTimeout bounds the alternate collector fetch
	AlternateTimeout time.Duration

	// MaxAttempts includes the initial attempt of the session fetch
	MaxAttempts int

	// MaxBodySize caps the bytes read from any response body
	MaxBodySize int

	// AlternateUserAgent is the fixed identity of the alternate fetcher
	AlternateUserAgent string
}

// IdentityConfig holds simulated browser identity configuration
type IdentityConfig struct {
	// DelayMin is the lower bound of the pre-request delay
	DelayMin time.Duration

	// DelayMax is the upper bound of the pre-request delay
	DelayMax time.Duration
}

// ExtractionConfig holds the character thresholds each strategy must exceed
type ExtractionConfig struct {
	// GeneralMinChars applies to the session and alternate strategies
	GeneralMinChars int

	// MarketplaceMinChars applies to the product description heuristic
	MarketplaceMinChars int

	// RawMinChars applies to the tag-stripped last resort
	RawMinChars int

	// RawMaxChars truncates the tag-stripped last resort
	RawMaxChars int
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string

	// Quiet discards all diagnostics
	Quiet bool
}

// Default returns the configuration the CLI runs with
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			SessionTimeout:     15 * time.Second,
			AlternateTimeout:   30 * time.Second,
			MaxAttempts:        1,
			MaxBodySize:        5 * 1024 * 1024,
			AlternateUserAgent: "Mozilla/5.0 (compatible; webtext/1.0)",
		},
		Identity: IdentityConfig{
			DelayMin: 500 * time.Millisecond,
			DelayMax: 1500 * time.Millisecond,
		},
		Extraction: ExtractionConfig{
			GeneralMinChars:     100,
			MarketplaceMinChars: 50,
			RawMinChars:         200,
			RawMaxChars:         5000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Fetch.SessionTimeout <= 0 {
		return invalid("fetch.session_timeout", "must be positive")
	}

	if c.Fetch.AlternateTimeout <= 0 {
		return invalid("fetch.alternate_timeout", "must be positive")
	}

	if c.Fetch.MaxAttempts < 1 {
		return invalid("fetch.max_attempts", "must be at least 1")
	}

	if c.Fetch.MaxBodySize <= 0 {
		return invalid("fetch.max_body_size", "must be positive")
	}

	if c.Identity.DelayMin < 0 || c.Identity.DelayMax < c.Identity.DelayMin {
		return invalid("identity.delay", "range must satisfy 0 <= min <= max")
	}

	if c.Extraction.GeneralMinChars < 0 || c.Extraction.MarketplaceMinChars < 0 || c.Extraction.RawMinChars < 0 {
		return invalid("extraction.thresholds", "cannot be negative")
	}

	if c.Extraction.RawMaxChars < 1 {
		return invalid("extraction.raw_max_chars", "must be at least 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level", "must be one of debug, info, warn, error")
	}

	return nil
}

func invalid(field, message string) error {
	return &coreerrors.ValidationError{Field: field, Message: message}
}
