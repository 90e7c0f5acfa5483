package chi

import (
	"net/url"
	"testing"

	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
)

func TestParseKitListParams_Defaults(t *testing.T) {
	p, err := parseKitListParams(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.query != "" || p.limit != 0 || p.offset != 0 {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if !p.slugs.IsEmpty() {
		t.Errorf("expected no facet slugs, got %+v", p.slugs)
	}
	if p.sort.Field != "" || p.sort.Desc {
		t.Errorf("expected zero sort, got %+v", p.sort)
	}
}

func TestParseKitListParams_Full(t *testing.T) {
	q := url.Values{
		"q":      {"  zaku  "},
		"grade":  {"hg,mg", "pg"},
		"series": {"msg"},
		"sort":   {"release_date"},
		"order":  {"desc"},
		"limit":  {"50"},
		"offset": {"100"},
	}

	p, err := parseKitListParams(q)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p.query != "zaku" {
		t.Errorf("query not trimmed: %q", p.query)
	}
	// Repeatable and comma-separated forms combine.
	if len(p.slugs.Grades) != 3 || p.slugs.Grades[0] != "hg" || p.slugs.Grades[2] != "pg" {
		t.Errorf("grades wrong: %v", p.slugs.Grades)
	}
	if len(p.slugs.Series) != 1 {
		t.Errorf("series wrong: %v", p.slugs.Series)
	}
	if p.sort.Field != criteria.SortReleaseDate || !p.sort.Desc {
		t.Errorf("sort wrong: %+v", p.sort)
	}
	if p.limit != 50 || p.offset != 100 {
		t.Errorf("pagination wrong: %+v", p)
	}
}

func TestParseKitListParams_Invalid(t *testing.T) {
	cases := []struct {
		name string
		q    url.Values
	}{
		{"bad sort", url.Values{"sort": {"popularity"}}},
		{"bad order", url.Values{"order": {"descending"}}},
		{"bad limit", url.Values{"limit": {"ten"}}},
		{"bad offset", url.Values{"offset": {"1.5"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseKitListParams(tc.q); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCsvParam_SkipsBlanks(t *testing.T) {
	q := url.Values{"grade": {" hg , ,mg", ""}}

	got := csvParam(q, "grade")
	if len(got) != 2 || got[0] != "hg" || got[1] != "mg" {
		t.Errorf("unexpected values: %v", got)
	}
}
