package search

import (
	"context"
	"testing"
	"time"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
)

// mockIndex implements IndexRepository for tests.
type mockIndex struct {
	kits       []catalog.SearchableKit
	kitsTotal  int
	kitsErr    error
	suits      []catalog.SearchableMobileSuit
	suitsTotal int
	suitsErr   error
	names      []string
	namesErr   error

	kitsCalls      int
	suitsCalls     int
	namesCalls     int
	lastFetchLimit int
	lastNamesFetch int
	lastCrit       criteria.Criteria
}

func (m *mockIndex) SearchKits(
	_ context.Context, crit criteria.Criteria, fetchLimit int,
) ([]catalog.SearchableKit, int, error) {
	m.kitsCalls++
	m.lastFetchLimit = fetchLimit
	m.lastCrit = crit
	return m.kits, m.kitsTotal, m.kitsErr
}

func (m *mockIndex) SearchMobileSuits(
	_ context.Context, _ string, _ int,
) ([]catalog.SearchableMobileSuit, int, error) {
	m.suitsCalls++
	return m.suits, m.suitsTotal, m.suitsErr
}

func (m *mockIndex) SuggestKitNames(_ context.Context, _ string, fetch int) ([]string, error) {
	m.namesCalls++
	m.lastNamesFetch = fetch
	return m.names, m.namesErr
}

// mockFallback implements FallbackRepository for tests.
type mockFallback struct {
	kits       []catalog.SearchableKit
	kitsTotal  int
	kitsErr    error
	suits      []catalog.SearchableMobileSuit
	suitsTotal int
	suitsErr   error
	names      []string
	namesErr   error

	kitsCalls  int
	suitsCalls int
	namesCalls int
}

func (m *mockFallback) SearchKits(
	_ context.Context, _ criteria.Criteria,
) ([]catalog.SearchableKit, int, error) {
	m.kitsCalls++
	return m.kits, m.kitsTotal, m.kitsErr
}

func (m *mockFallback) SearchMobileSuits(
	_ context.Context, _ string, _ int,
) ([]catalog.SearchableMobileSuit, int, error) {
	m.suitsCalls++
	return m.suits, m.suitsTotal, m.suitsErr
}

func (m *mockFallback) SuggestKitNames(_ context.Context, _ string, _ int) ([]string, error) {
	m.namesCalls++
	return m.names, m.namesErr
}

func newTestService(index *mockIndex, fallback *mockFallback) *Service {
	return New(index, fallback, nil, nil)
}

func mustCriteria(t *testing.T, term string, sort criteria.Sort, limit, offset int) criteria.Criteria {
	t.Helper()
	c, err := criteria.New(term, criteria.Facets{}, sort, limit, offset)
	if err != nil {
		t.Fatalf("criteria.New: %v", err)
	}
	return c
}

func baseKit(id string, year int) catalog.SearchableKit {
	k := catalog.SearchableKit{ID: id, Name: id, GradeSlug: "hg"}
	if year > 0 {
		d := time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
		k.ReleaseDate = &d
	}
	return k
}

func variantKit(id string, year int) catalog.SearchableKit {
	k := baseKit(id, year)
	base := "base-" + id
	k.BaseKitID = &base
	return k
}

func suit(id string) catalog.SearchableMobileSuit {
	return catalog.SearchableMobileSuit{ID: id, Name: id}
}

func pageIDs(kits []catalog.KitSummary) []string {
	out := make([]string, len(kits))
	for i, k := range kits {
		out[i] = k.ID
	}
	return out
}
