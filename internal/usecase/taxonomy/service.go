// Package taxonomy serves the filter taxonomies (grades, product lines,
// mobile suits, series, release types) and resolves filter slugs to ids.
// The relational store is authoritative here, not the search index.
package taxonomy

import (
	"context"
	"fmt"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
)

// Taxonomy table names in the relational store.
const (
	tableGrades       = "grades"
	tableProductLines = "product_lines"
	tableMobileSuits  = "mobile_suits"
	tableSeries       = "series"
	tableReleaseTypes = "release_types"
)

// Service coordinates taxonomy reads.
type Service struct {
	repo Repository
}

// New creates a taxonomy service.
func New(repo Repository) *Service {
	return &Service{repo: repo}
}

// FilterData returns every filter taxonomy for the filter UI.
func (s *Service) FilterData(ctx context.Context) (catalog.FilterData, error) {
	var fd catalog.FilterData

	for _, t := range []struct {
		table string
		dst   *[]catalog.TaxonomyEntry
	}{
		{tableGrades, &fd.Grades},
		{tableProductLines, &fd.ProductLines},
		{tableMobileSuits, &fd.MobileSuits},
		{tableSeries, &fd.Series},
		{tableReleaseTypes, &fd.ReleaseTypes},
	} {
		entries, err := s.repo.Taxonomy(ctx, t.table)
		if err != nil {
			return catalog.FilterData{}, fmt.Errorf("load %s: %w", t.table, err)
		}
		*t.dst = entries
	}

	return fd, nil
}

// FacetSlugs carries per-facet slug selections, typically from URL params.
type FacetSlugs struct {
	Grades       []string
	ProductLines []string
	MobileSuits  []string
	Series       []string
	ReleaseTypes []string
}

// IsEmpty reports whether no facet carries a slug.
func (f FacetSlugs) IsEmpty() bool {
	return len(f.Grades) == 0 && len(f.ProductLines) == 0 &&
		len(f.MobileSuits) == 0 && len(f.Series) == 0 && len(f.ReleaseTypes) == 0
}

// ResolveFacetSlugs maps slug selections to id facets. Slugs that resolve
// to nothing are dropped silently: a stale bookmarked filter degrades to
// an unfiltered facet instead of failing the search.
func (s *Service) ResolveFacetSlugs(ctx context.Context, slugs FacetSlugs) (criteria.Facets, error) {
	var (
		f   criteria.Facets
		err error
	)

	if f.GradeIDs, err = s.resolve(ctx, tableGrades, slugs.Grades); err != nil {
		return criteria.Facets{}, err
	}
	if f.ProductLineIDs, err = s.resolve(ctx, tableProductLines, slugs.ProductLines); err != nil {
		return criteria.Facets{}, err
	}
	if f.MobileSuitIDs, err = s.resolve(ctx, tableMobileSuits, slugs.MobileSuits); err != nil {
		return criteria.Facets{}, err
	}
	if f.SeriesIDs, err = s.resolve(ctx, tableSeries, slugs.Series); err != nil {
		return criteria.Facets{}, err
	}
	if f.ReleaseTypeIDs, err = s.resolve(ctx, tableReleaseTypes, slugs.ReleaseTypes); err != nil {
		return criteria.Facets{}, err
	}

	return f, nil
}

func (s *Service) resolve(ctx context.Context, table string, slugs []string) ([]string, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	ids, err := s.repo.ResolveSlugs(ctx, table, slugs)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", table, err)
	}
	return ids, nil
}
