package chi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
	healthuc "github.com/gunplahub/kitsearch/internal/usecase/health"
	searchuc "github.com/gunplahub/kitsearch/internal/usecase/search"
	syncuc "github.com/gunplahub/kitsearch/internal/usecase/sync"
	taxonomyuc "github.com/gunplahub/kitsearch/internal/usecase/taxonomy"
)

// stubIndex backs the search service in handler tests.
type stubIndex struct {
	kits  []catalog.SearchableKit
	suits []catalog.SearchableMobileSuit
	names []string
	total int
	err   error
}

func (s *stubIndex) SearchKits(_ context.Context, _ criteria.Criteria, _ int) ([]catalog.SearchableKit, int, error) {
	return s.kits, s.total, s.err
}

func (s *stubIndex) SearchMobileSuits(_ context.Context, _ string, _ int) ([]catalog.SearchableMobileSuit, int, error) {
	return s.suits, len(s.suits), s.err
}

func (s *stubIndex) SuggestKitNames(_ context.Context, _ string, _ int) ([]string, error) {
	return s.names, s.err
}

// stubFallback fails loudly: handler tests exercise the index path only.
type stubFallback struct {
	err error
}

func (s *stubFallback) SearchKits(_ context.Context, _ criteria.Criteria) ([]catalog.SearchableKit, int, error) {
	return nil, 0, s.err
}

func (s *stubFallback) SearchMobileSuits(_ context.Context, _ string, _ int) ([]catalog.SearchableMobileSuit, int, error) {
	return nil, 0, s.err
}

func (s *stubFallback) SuggestKitNames(_ context.Context, _ string, _ int) ([]string, error) {
	return nil, s.err
}

// stubTaxonomy resolves every slug to itself with an "id-" prefix.
type stubTaxonomy struct {
	entries []catalog.TaxonomyEntry
	err     error
}

func (s *stubTaxonomy) Taxonomy(_ context.Context, _ string) ([]catalog.TaxonomyEntry, error) {
	return s.entries, s.err
}

func (s *stubTaxonomy) ResolveSlugs(_ context.Context, _ string, slugs []string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	ids := make([]string, len(slugs))
	for i, slug := range slugs {
		ids[i] = "id-" + slug
	}
	return ids, nil
}

// stubCatalog implements the sync and health catalog contracts.
type stubCatalog struct {
	kits  []catalog.SearchableKit
	suits []catalog.SearchableMobileSuit
	err   error
}

func (s *stubCatalog) AllKits(_ context.Context) ([]catalog.SearchableKit, error) {
	return s.kits, s.err
}

func (s *stubCatalog) AllMobileSuits(_ context.Context) ([]catalog.SearchableMobileSuit, error) {
	return s.suits, s.err
}

func (s *stubCatalog) Ping(_ context.Context) error { return s.err }

type stubIndexWriter struct {
	err error
}

func (s *stubIndexWriter) EnsureIndexes(_ context.Context) error { return s.err }

func (s *stubIndexWriter) IndexKits(_ context.Context, _ []catalog.SearchableKit) error {
	return s.err
}

func (s *stubIndexWriter) IndexMobileSuits(_ context.Context, _ []catalog.SearchableMobileSuit) error {
	return s.err
}

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error { return s.err }

// testFixture bundles the stubs behind a routed server.
type testFixture struct {
	index    *stubIndex
	fallback *stubFallback
	taxonomy *stubTaxonomy
	catalog  *stubCatalog
	writer   *stubIndexWriter
	router   chirouter.Router
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		index:    &stubIndex{},
		fallback: &stubFallback{},
		taxonomy: &stubTaxonomy{},
		catalog:  &stubCatalog{},
		writer:   &stubIndexWriter{},
	}

	logger := zap.NewNop()
	srv := NewServer(
		searchuc.New(f.index, f.fallback, nil, logger),
		taxonomyuc.New(f.taxonomy),
		syncuc.New(f.catalog, f.writer, logger),
		healthuc.New(&stubPinger{}, f.catalog),
		logger,
	)

	f.router = chirouter.NewRouter()
	srv.RegisterRoutes(f.router)
	return f
}

func (f *testFixture) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, http.NoBody)
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func sampleKit(id, name string) catalog.SearchableKit {
	return catalog.SearchableKit{
		ID:    id,
		Slug:  id,
		Name:  name,
		Grade: "High Grade",
	}
}
