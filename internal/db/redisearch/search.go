package redisearch

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/rueidis"

	"github.com/gunplahub/kitsearch/internal/db"
)

// Search runs a paginated FT.SEARCH. Facet filters compile to tag clauses
// (OR within a facet, AND across facets); an empty query text matches all
// documents. Errors are not retried here; recovery belongs to the caller.
func (s *Store) Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error) {
	if q.IndexName == "" {
		return nil, fmt.Errorf("index name is required")
	}
	if q.Limit <= 0 {
		return nil, fmt.Errorf("limit must be positive")
	}
	if q.Offset < 0 {
		return nil, fmt.Errorf("offset must not be negative")
	}

	queryStr := buildQuery(q.Query, q.Facets)

	args := []string{q.IndexName, queryStr}

	if len(q.ReturnFields) > 0 {
		args = append(args, "RETURN", strconv.Itoa(len(q.ReturnFields)))
		args = append(args, q.ReturnFields...)
	}

	if q.Sort != nil {
		dir := "ASC"
		if q.Sort.Desc {
			dir = "DESC"
		}
		args = append(args, "SORTBY", q.Sort.Field, dir)
	}

	args = append(args,
		"LIMIT", strconv.Itoa(q.Offset), strconv.Itoa(q.Limit),
		"DIALECT", "2",
	)

	cmd := s.b().Arbitrary("FT.SEARCH").Args(args...).Build()
	raw, err := s.do(ctx, cmd).ToArray()
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: err}
	}

	return parseSearchResult(raw)
}

// buildQuery combines the facet filter clause with the escaped text part.
// No facets and no text yields "*" (match all); an absent filter clause
// must never be read as "match nothing".
func buildQuery(text string, facets []db.FacetFilter) string {
	filterStr := buildFilter(facets)

	text = strings.TrimSpace(text)
	if text == "" {
		if filterStr == "" {
			return "*"
		}
		return filterStr
	}

	textPart := escapeQuery(text)
	if filterStr == "" {
		return textPart
	}
	return filterStr + " " + textPart
}

// buildFilter translates facet filters into an FT.SEARCH predicate:
// each facet becomes @field:{v1|v2}, facets are joined with spaces (AND).
// Empty facets contribute nothing. Output is deterministic for a given
// input; value order inside a clause follows the input slice.
func buildFilter(facets []db.FacetFilter) string {
	var parts []string

	for _, f := range facets {
		if f.Field == "" || len(f.Values) == 0 {
			continue
		}
		escaped := make([]string, 0, len(f.Values))
		for _, v := range f.Values {
			if v == "" {
				continue
			}
			escaped = append(escaped, tagEscaper.Replace(v))
		}
		if len(escaped) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("@%s:{%s}", f.Field, strings.Join(escaped, "|")))
	}

	return strings.Join(parts, " ")
}

// --- Result parsing ---

// parseSearchResult parses the RESP2 reply:
// [total, key1, fields1, key2, fields2, ...] (2-stride).
func parseSearchResult(raw []rueidis.RedisMessage) (*db.SearchResult, error) {
	if len(raw) == 0 {
		return &db.SearchResult{}, nil
	}

	total, err := raw[0].AsInt64()
	if err != nil {
		return nil, fmt.Errorf("parse total: %w", err)
	}
	if total == 0 {
		return &db.SearchResult{Total: 0}, nil
	}

	entries := make([]db.SearchEntry, 0, (len(raw)-1)/2)
	for i := 1; i+1 < len(raw); i += 2 {
		key, err := raw[i].ToString()
		if err != nil {
			continue
		}

		fields, err := raw[i+1].ToArray()
		if err != nil {
			continue
		}

		entries = append(entries, db.SearchEntry{
			Key:    key,
			Fields: parseFieldPairs(fields),
		})
	}

	return &db.SearchResult{Total: int(total), Entries: entries}, nil
}

func parseFieldPairs(fields []rueidis.RedisMessage) map[string]string {
	m := make(map[string]string, len(fields)/2)
	for j := 0; j+1 < len(fields); j += 2 {
		name, err := fields[j].ToString()
		if err != nil {
			continue
		}
		value, err := fields[j+1].ToString()
		if err != nil {
			continue
		}
		m[name] = value
	}
	return m
}

// --- Query escaping ---

var tagEscaper = strings.NewReplacer(
	",", "\\,",
	".", "\\.",
	"<", "\\<",
	">", "\\>",
	"{", "\\{",
	"}", "\\}",
	"\"", "\\\"",
	"'", "\\'",
	":", "\\:",
	";", "\\;",
	"!", "\\!",
	"@", "\\@",
	"#", "\\#",
	"$", "\\$",
	"%", "\\%",
	"^", "\\^",
	"&", "\\&",
	"*", "\\*",
	"(", "\\(",
	")", "\\)",
	"-", "\\-",
	"+", "\\+",
	"=", "\\=",
	"~", "\\~",
	" ", "\\ ",
)

func escapeQuery(s string) string {
	return queryEscaper.Replace(s)
}

var queryEscaper = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	`"`, `\"`,
	`@`, `\@`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`-`, `\-`,
	`~`, `\~`,
	`*`, `\*`,
	`[`, `\[`,
	`]`, `\]`,
	`!`, `\!`,
	`%`, `\%`,
	`^`, `\^`,
	`$`, `\$`,
	`<`, `\<`,
	`>`, `\>`,
	`=`, `\=`,
	`;`, `\;`,
	`+`, `\+`,
)
