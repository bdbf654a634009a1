// Package wiki builds tibia.fandom.com URLs for articles and searches.
package wiki

import (
	"net/url"
	"strings"
)

const (
	// BaseURL prefixes direct article links.
	BaseURL = "https://tibia.fandom.com/wiki/"
	// SearchPageURL is the wiki's search endpoint.
	SearchPageURL = "https://tibia.fandom.com/wiki/Special:Search"
)

// ArticleURL returns the direct article link for a title. Spaces become
// underscores; everything outside the unreserved set is percent-escaped so
// names like "Lion's Mane" form stable links.
func ArticleURL(title string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	return BaseURL + escapeSlug(slug)
}

// SearchURL returns the search page link for a free-form query.
func SearchURL(query string) string {
	params := url.Values{}
	params.Set("query", query)
	return SearchPageURL + "?" + params.Encode()
}

// escapeSlug percent-escapes a slug, keeping unreserved characters and the
// underscore word separator.
func escapeSlug(slug string) string {
	var b strings.Builder
	for i := 0; i < len(slug); i++ {
		c := slug[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

func isUnreserved(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-' || c == '.' || c == '~':
		return true
	}
	return false
}
