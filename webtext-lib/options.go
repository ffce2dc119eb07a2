// ABOUTME: Configuration options for the webtext library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package webtext

import (
	"math/rand"
	"time"

	"webtext/core/extraction"
	"webtext/core/interfaces"
	"webtext/pkg/config"
)

// Config holds the configuration for the client
type Config struct {
	// Settings holds timeouts, thresholds and log settings
	Settings *config.Config

	// Logger configuration
	Logger interfaces.Logger

	// PrimaryFetcher performs the browser-like session fetch
	PrimaryFetcher interfaces.Fetcher

	// AlternateFetcher performs the independent re-fetch
	AlternateFetcher interfaces.Fetcher

	// Extractor turns raw HTML into readable text
	Extractor interfaces.ContentExtractor

	// UserAgents and Referrers override the identity candidate tables
	UserAgents []string
	Referrers  []string

	// Rand drives identity selection and delay jitter
	Rand *rand.Rand

	// Sleeper performs the pre-request delay
	Sleeper extraction.Sleeper

	// overrides land on Settings after every option has run, so they survive WithConfig
	quiet    bool
	delaySet bool
	delayMin time.Duration
	delayMax time.Duration
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithConfig replaces the base settings. The client keeps its own copy, and
// WithQuietMode and WithDelayRange still apply on top regardless of option order.
func WithConfig(settings *config.Config) Option {
	return func(c *Config) error {
		if settings == nil {
			return NewError(ErrorTypeConfiguration, "settings cannot be nil")
		}
		copied := *settings
		c.Settings = &copied
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.quiet = true
		c.Logger = nil
		return nil
	}
}

// WithPrimaryFetcher sets a custom session fetcher
func WithPrimaryFetcher(fetcher interfaces.Fetcher) Option {
	return func(c *Config) error {
		c.PrimaryFetcher = fetcher
		return nil
	}
}

// WithAlternateFetcher sets a custom alternate fetcher
func WithAlternateFetcher(fetcher interfaces.Fetcher) Option {
	return func(c *Config) error {
		c.AlternateFetcher = fetcher
		return nil
	}
}

// WithExtractor sets a custom content extractor
func WithExtractor(extractor interfaces.ContentExtractor) Option {
	return func(c *Config) error {
		c.Extractor = extractor
		return nil
	}
}

// WithIdentityCandidates overrides the user agent and referrer tables
func WithIdentityCandidates(userAgents, referrers []string) Option {
	return func(c *Config) error {
		if len(userAgents) == 0 || len(referrers) == 0 {
			return NewError(ErrorTypeConfiguration, "identity candidates cannot be empty")
		}
		c.UserAgents = userAgents
		c.Referrers = referrers
		return nil
	}
}

// WithDelayRange sets the bounds of the pre-request delay
func WithDelayRange(min, max time.Duration) Option {
	return func(c *Config) error {
		if min < 0 || max < min {
			return NewError(ErrorTypeConfiguration, "invalid delay range").
				WithContext("min", min.String()).
				WithContext("max", max.String())
		}
		c.delaySet = true
		c.delayMin = min
		c.delayMax = max
		return nil
	}
}

// WithRandSource makes identity selection and delay jitter deterministic
func WithRandSource(seed int64) Option {
	return func(c *Config) error {
		c.Rand = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithSleeper replaces the pre-request sleep, typically with a no-op in tests
func WithSleeper(sleeper extraction.Sleeper) Option {
	return func(c *Config) error {
		c.Sleeper = sleeper
		return nil
	}
}

// applyOverrides copies option overrides onto the settings
func applyOverrides(c *Config) {
	if c.Settings == nil {
		return
	}
	if c.quiet {
		c.Settings.Log.Quiet = true
	}
	if c.delaySet {
		c.Settings.Identity.DelayMin = c.delayMin
		c.Settings.Identity.DelayMax = c.delayMax
	}
}

// defaultConfig returns the default client configuration
func defaultConfig() Config {
	return Config{
		Settings: config.Default(),
	}
}
