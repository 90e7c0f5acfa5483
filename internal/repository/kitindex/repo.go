// Package kitindex is the search-index repository: it executes collection
// queries against the FT index store and converts raw hits into domain
// documents, and owns the write path the sync process uses.
package kitindex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gunplahub/kitsearch/internal/db"
	"github.com/gunplahub/kitsearch/internal/domain"
	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
)

// KeyPrefix namespaces all index keys.
const KeyPrefix = "kitsearch:"

// Collection names, one FT index per document collection.
const (
	KitsCollection        = "kits"
	MobileSuitsCollection = "mobile_suits"
)

// store is the consumer interface for index operations (ISP).
type store interface {
	Search(ctx context.Context, q *db.SearchQuery) (*db.SearchResult, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
}

// Repo implements the index-backed retrieval and sync contracts.
type Repo struct {
	store store
}

// New creates a kit index repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

func indexName(collection string) string {
	return fmt.Sprintf("%s%s:idx", KeyPrefix, collection)
}

func docKey(collection, id string) string {
	return fmt.Sprintf("%s%s:%s", KeyPrefix, collection, id)
}

// storeErr classifies an index store failure. Command errors mean the
// index could not serve the request and map to domain.ErrSearchUnavailable
// so the transport answers 503 instead of a generic internal error.
// Validation errors pass through unchanged.
func storeErr(err error) error {
	var dbErr *db.Error
	if errors.As(err, &dbErr) {
		return fmt.Errorf("%w: %w", domain.ErrSearchUnavailable, err)
	}
	return err
}

// SearchKits queries the kits collection. fetchLimit may exceed the
// criteria's page size when the caller over-fetches for re-ranking; the
// criteria's offset is applied index-side. Hits come back in the index's
// relevance order (or the requested sort order) plus the estimated total.
func (r *Repo) SearchKits(
	ctx context.Context, crit criteria.Criteria, fetchLimit int,
) ([]catalog.SearchableKit, int, error) {
	q := &db.SearchQuery{
		IndexName:    indexName(KitsCollection),
		Query:        crit.Term(),
		Facets:       compileFacets(crit.Facets()),
		Sort:         compileSort(crit.Sort()),
		Limit:        fetchLimit,
		Offset:       crit.Offset(),
		ReturnFields: kitReturnFields,
	}

	sr, err := r.store.Search(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("search kits: %w", storeErr(err))
	}

	kits := make([]catalog.SearchableKit, 0, len(sr.Entries))
	prefix := docKey(KitsCollection, "")
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, prefix)
		kits = append(kits, kitFromFields(id, entry.Fields))
	}

	return kits, sr.Total, nil
}

// SearchMobileSuits queries the mobile suits collection in relevance order.
func (r *Repo) SearchMobileSuits(
	ctx context.Context, term string, limit int,
) ([]catalog.SearchableMobileSuit, int, error) {
	q := &db.SearchQuery{
		IndexName:    indexName(MobileSuitsCollection),
		Query:        term,
		Limit:        limit,
		ReturnFields: mobileSuitReturnFields,
	}

	sr, err := r.store.Search(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("search mobile suits: %w", storeErr(err))
	}

	suits := make([]catalog.SearchableMobileSuit, 0, len(sr.Entries))
	prefix := docKey(MobileSuitsCollection, "")
	for _, entry := range sr.Entries {
		id := strings.TrimPrefix(entry.Key, prefix)
		suits = append(suits, mobileSuitFromFields(id, entry.Fields))
	}

	return suits, sr.Total, nil
}

// SuggestKitNames returns kit names for the given term in relevance order.
// Deduplication and capping belong to the caller.
func (r *Repo) SuggestKitNames(ctx context.Context, term string, fetch int) ([]string, error) {
	q := &db.SearchQuery{
		IndexName:    indexName(KitsCollection),
		Query:        term,
		Limit:        fetch,
		ReturnFields: []string{fieldName},
	}

	sr, err := r.store.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("suggest kit names: %w", storeErr(err))
	}

	names := make([]string, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		if name := entry.Fields[fieldName]; name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// compileFacets translates criteria facets into index facet filters.
// Empty facets contribute nothing; an all-empty selection compiles to no
// filter at all (match everything, never "match nothing").
func compileFacets(f criteria.Facets) []db.FacetFilter {
	var facets []db.FacetFilter

	add := func(field string, values []string) {
		if len(values) > 0 {
			facets = append(facets, db.FacetFilter{Field: field, Values: values})
		}
	}

	add(fieldGradeID, f.GradeIDs)
	add(fieldProductLineID, f.ProductLineIDs)
	add(fieldMobileSuitIDs, f.MobileSuitIDs)
	add(fieldSeriesID, f.SeriesIDs)
	add(fieldReleaseTypeID, f.ReleaseTypeIDs)

	return facets
}

// compileSort maps a criteria sort onto a sortable index field. Relevance
// means no SORTBY: the index's native ranking is the order.
func compileSort(s criteria.Sort) *db.SortSpec {
	switch s.Field {
	case criteria.SortReleaseDate:
		return &db.SortSpec{Field: fieldReleaseTS, Desc: s.Desc}
	case criteria.SortPrice:
		return &db.SortSpec{Field: fieldPriceYen, Desc: s.Desc}
	case criteria.SortName:
		return &db.SortSpec{Field: fieldName, Desc: s.Desc}
	default:
		return nil
	}
}
