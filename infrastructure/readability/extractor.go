// ABOUTME: Generic main-content extractor for arbitrary article pages
// ABOUTME: Prunes boilerplate with goquery, then runs go-readability over what remains

package readability

import (
	nurl "net/url"
	"regexp"
	"strings"

	"webtext/core/domain"
	coreerrors "webtext/core/errors"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// noiseSelectors are removed before readability scores the page
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "aside", "iframe",
	"form", "button", "svg", "canvas",
	"[role=navigation]", "[role=banner]", "[aria-hidden=true]",
	".ads", ".advertisement", ".ad-container", ".sponsored",
	".cookie-banner", ".cookie-consent", "#cookie-banner",
	".sidebar", ".menu", ".navigation", ".share", ".social-share",
}

var (
	horizontalSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	blankLines      = regexp.MustCompile(`\n\s*\n+`)
	lineEdges       = regexp.MustCompile(` ?\n ?`)
)

// Extractor implements interfaces.ContentExtractor
type Extractor struct{}

// NewExtractor creates a readability based extractor
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the readable main text of raw, or "" when the page has none
func (e *Extractor) Extract(raw *domain.RawDownload) (string, error) {
	if raw == nil || strings.TrimSpace(raw.Body) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw.Body))
	if err != nil {
		return "", &coreerrors.ExtractionError{Strategy: raw.Source, Message: "parse html", Err: err}
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	// A malformed URL only costs readability its link resolution
	pageURL, err := nurl.Parse(raw.URL)
	if err != nil {
		pageURL = &nurl.URL{}
	}

	article, err := readability.FromDocument(doc.Nodes[0], pageURL)
	if err != nil {
		return "", &coreerrors.ExtractionError{Strategy: raw.Source, Message: "readability", Err: err}
	}

	return normalizeText(article.TextContent), nil
}

// normalizeText collapses runs of spaces and keeps at most one blank line between paragraphs
func normalizeText(text string) string {
	text = horizontalSpace.ReplaceAllString(text, " ")
	text = lineEdges.ReplaceAllString(text, "\n")
	text = blankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
