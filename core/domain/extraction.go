// ABOUTME: Domain models for a single page extraction run
// ABOUTME: Defines the request identity, raw downloads and extracted text with provenance

package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Provenance names the strategy that produced an ExtractedText
type Provenance string

const (
	ProvenanceSession     Provenance = "session"
	ProvenanceAlternate   Provenance = "alternate"
	ProvenanceMarketplace Provenance = "marketplace"
	ProvenancePartial     Provenance = "partial"
	ProvenanceRawMarkup   Provenance = "raw_markup"
	ProvenanceSentinel    Provenance = "sentinel"
)

// RequestContext is the simulated browser identity used for one extraction.
// It is built fresh per call and discarded when the call returns.
type RequestContext struct {
	URL       string
	UserAgent string
	Referrer  string
	Headers   map[string]string
	Delay     time.Duration
}

// RawDownload is the body obtained by one fetch attempt
type RawDownload struct {
	URL         string `json:"url"`
	Body        string `json:"body"`
	ContentType string `json:"contentType"`
	StatusCode  int    `json:"statusCode"`
	Source      string `json:"source"`
}

// ExtractedText is the text returned to the caller together with where it came from
type ExtractedText struct {
	Text       string     `json:"text"`
	Provenance Provenance `json:"provenance"`
}

// IsMeaningful reports whether text, once trimmed, is longer than threshold characters.
func IsMeaningful(text string, threshold int) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	return utf8.RuneCountInString(trimmed) > threshold
}
