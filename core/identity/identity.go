// ABOUTME: Builds the simulated browser identity used for one extraction call
// ABOUTME: Picks a user agent, a referrer and a pre-request delay from fixed candidate tables

package identity

import (
	"math/rand"
	"sync"
	"time"

	"webtext/core/domain"
)

// DefaultUserAgents are desktop browser identities the session fetch rotates through
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
}

// DefaultReferrers are the pages the session fetch pretends to arrive from
var DefaultReferrers = []string{
	"https://www.google.com/",
	"https://www.bing.com/",
	"https://duckduckgo.com/",
	"https://www.yahoo.com/",
	"https://www.reddit.com/",
}

// Header values that do not change between calls
const (
	acceptHeader         = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguageHeader = "en-US,en;q=0.9"
	acceptEncodingHeader = "gzip, deflate"
)

// Builder creates a fresh RequestContext per call
type Builder struct {
	userAgents []string
	referrers  []string
	delayMin   time.Duration
	delayMax   time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBuilder creates a builder over the given candidate tables.
// Empty tables fall back to the defaults; a nil rng is seeded from the clock.
func NewBuilder(userAgents, referrers []string, delayMin, delayMax time.Duration, rng *rand.Rand) *Builder {
	if len(userAgents) == 0 {
		userAgents = DefaultUserAgents
	}
	if len(referrers) == 0 {
		referrers = DefaultReferrers
	}
	if delayMax < delayMin {
		delayMax = delayMin
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Builder{
		userAgents: userAgents,
		referrers:  referrers,
		delayMin:   delayMin,
		delayMax:   delayMax,
		rng:        rng,
	}
}

// Build picks an identity for url and assembles the browser header bundle
func (b *Builder) Build(url string) domain.RequestContext {
	b.mu.Lock()
	userAgent := b.userAgents[b.rng.Intn(len(b.userAgents))]
	referrer := b.referrers[b.rng.Intn(len(b.referrers))]
	delay := b.delayMin
	if span := b.delayMax - b.delayMin; span > 0 {
		delay += time.Duration(b.rng.Int63n(int64(span) + 1))
	}
	b.mu.Unlock()

	return domain.RequestContext{
		URL:       url,
		UserAgent: userAgent,
		Referrer:  referrer,
		Headers: map[string]string{
			"User-Agent":                userAgent,
			"Accept":                    acceptHeader,
			"Accept-Language":           acceptLanguageHeader,
			"Accept-Encoding":           acceptEncodingHeader,
			"Referer":                   referrer,
			"DNT":                       "1",
			"Upgrade-Insecure-Requests": "1",
			"Connection":                "keep-alive",
		},
		Delay: delay,
	}
}
