// ABOUTME: Site-specific product page heuristic for marketplace hosts
// ABOUTME: Pulls the product title and description out of raw markup with fixed patterns

package extraction

import (
	"errors"
	"fmt"
	nurl "net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	htmlutil "webtext/pkg/utils/html"
)

// ProductTitleFallback stands in for a missing product title
const ProductTitleFallback = "Product Title Not Found"

// marketplaceHostMarker is matched anywhere in the lowercased host, not as a suffix
const marketplaceHostMarker = "amazon"

var (
	productTitlePattern       = regexp.MustCompile(`(?is)<span[^>]*\sid=["']productTitle["'][^>]*>(.*?)</span>`)
	productDescriptionPattern = regexp.MustCompile(`(?is)<div[^>]*\sid=["']productDescription["'][^>]*>(.*?)</div>`)

	errNoProductDescription = errors.New("no product description marker")
)

// IsMarketplaceHost reports whether the host of rawURL contains the marketplace marker
func IsMarketplaceHost(rawURL string) bool {
	u, err := nurl.Parse(rawURL)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(u.Hostname()), marketplaceHostMarker)
}

// ExtractProduct returns "{title}\n\n{description}" when body carries a product
// description longer than minChars once tags are stripped.
func ExtractProduct(body string, minChars int) (string, error) {
	descMatch := productDescriptionPattern.FindStringSubmatch(body)
	if descMatch == nil {
		return "", errNoProductDescription
	}

	title := ProductTitleFallback
	if titleMatch := productTitlePattern.FindStringSubmatch(body); titleMatch != nil {
		if cleaned := htmlutil.StripHTML(titleMatch[1]); cleaned != "" {
			title = cleaned
		}
	}

	description := htmlutil.StripHTML(descMatch[1])
	if n := utf8.RuneCountInString(description); n <= minChars {
		return "", fmt.Errorf("product description too short: %d characters", n)
	}

	return title + "\n\n" + description, nil
}
