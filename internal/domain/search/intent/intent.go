// Package intent classifies free-text queries as variant-oriented or
// base-kit-oriented. The classification drives the ranking policy: a query
// like "RX-78-2 metallic" targets a specific finish, so variants must not be
// suppressed; a bare "RX-78-2" should surface the canonical kit first.
package intent

import "strings"

// variantKeywords are finish/version markers and grade abbreviations that
// signal a variant-targeted query. Matching is substring-based, not
// whole-word: a query merely containing "ver" inside a longer token still
// triggers variant mode. Known limitation, kept on purpose.
var variantKeywords = []string{
	"metallic",
	"clear",
	"ver",
	"titanium",
	"coating",
	"plated",
	"chrome",
	"pearl",
	"anniversary",
	"limited",
	"pg",
	"mg",
	"rg",
	"hg",
	"sd",
	"re",
	"eg",
	"fm",
	"mega",
}

// IsVariantQuery reports whether the query mentions any variant/finish
// keyword, case-insensitively. An empty query is never variant-oriented.
func IsVariantQuery(query string) bool {
	if query == "" {
		return false
	}
	q := strings.ToLower(query)
	for _, kw := range variantKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
