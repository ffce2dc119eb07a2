// ABOUTME: Public types returned by the webtext library
// ABOUTME: Mirrors core domain results without exposing internal packages

package webtext

import "webtext/core/domain"

// Result is the text extracted from one URL
type Result struct {
	// Text is always non-empty
	Text string `json:"text"`

	// Provenance names the strategy that produced Text
	Provenance string `json:"provenance"`

	// Degraded is true when no strategy met its own threshold
	Degraded bool `json:"degraded"`
}

func isDegraded(p domain.Provenance) bool {
	switch p {
	case domain.ProvenancePartial, domain.ProvenanceRawMarkup, domain.ProvenanceSentinel:
		return true
	}
	return false
}
