package chi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
	taxonomyuc "github.com/gunplahub/kitsearch/internal/usecase/taxonomy"
)

// kitListParams are the parsed query parameters of GET /v1/kits.
type kitListParams struct {
	query  string
	slugs  taxonomyuc.FacetSlugs
	sort   criteria.Sort
	limit  int
	offset int
}

// parseKitListParams parses listing query parameters. Facet parameters carry
// slugs, comma-separated and repeatable: ?grade=hg,mg&grade=pg selects all
// three grades.
func parseKitListParams(q url.Values) (kitListParams, error) {
	p := kitListParams{
		query: strings.TrimSpace(q.Get("q")),
		slugs: taxonomyuc.FacetSlugs{
			Grades:       csvParam(q, "grade"),
			ProductLines: csvParam(q, "product_line"),
			MobileSuits:  csvParam(q, "mobile_suit"),
			Series:       csvParam(q, "series"),
			ReleaseTypes: csvParam(q, "release_type"),
		},
	}

	sortField := criteria.SortField(q.Get("sort"))
	if sortField != "" && !sortField.IsValid() {
		return kitListParams{}, fmt.Errorf("invalid sort field: %q", sortField)
	}
	desc, err := parseOrder(q.Get("order"))
	if err != nil {
		return kitListParams{}, err
	}
	p.sort = criteria.Sort{Field: sortField, Desc: desc}

	if p.limit, err = intParam(q, "limit"); err != nil {
		return kitListParams{}, err
	}
	if p.offset, err = intParam(q, "offset"); err != nil {
		return kitListParams{}, err
	}
	return p, nil
}

func parseOrder(order string) (bool, error) {
	switch order {
	case "", "asc":
		return false, nil
	case "desc":
		return true, nil
	}
	return false, fmt.Errorf("invalid order: %q (want asc or desc)", order)
}

// csvParam collects a repeatable, comma-separated query parameter.
func csvParam(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func intParam(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return n, nil
}
