package itemids

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// NormalizeName canonicalizes an item name for mapping lookups: trim,
// collapse internal whitespace, fold the typographic apostrophe to a plain
// one, lower-case. The same rule is used when the mapping is built and when
// catalog items are resolved against it, so upstream formatting drift
// (double spaces, curly quotes, casing) never splits an item from its id.
func NormalizeName(name string) string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(name), "’", "'")
	cleaned = whitespaceRun.ReplaceAllString(cleaned, " ")
	return strings.ToLower(cleaned)
}

// normalizeHeader canonicalizes a table header cell for matching.
func normalizeHeader(value string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(value)), " ")
}
