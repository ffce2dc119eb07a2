// ABOUTME: HTML utilities for stripping tags and normalizing whitespace
// ABOUTME: Provides the regex based cleanup used by the degraded extraction paths

package html

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripTags replaces every HTML tag with a single space.
// Script and style bodies are not removed; callers that need prose should
// prefer a real extractor.
func StripTags(html string) string {
	return tagPattern.ReplaceAllString(html, " ")
}

// CollapseWhitespace replaces every whitespace run with one space and trims the ends
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// StripHTML removes HTML tags and collapses the remaining whitespace
func StripHTML(html string) string {
	return CollapseWhitespace(StripTags(html))
}

// Truncate returns at most max characters of text, counting runes rather than bytes
func Truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
