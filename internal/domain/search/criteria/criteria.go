// Package criteria defines validated search criteria for catalog queries:
// a free-text term, per-facet identifier filters, a sort specification, and
// pagination bounds.
package criteria

import (
	"fmt"

	"github.com/gunplahub/kitsearch/internal/domain"
)

// Pagination limits.
const (
	DefaultLimit = 20
	MaxLimit     = 100
	// MaxTermLength is the maximum allowed free-text term length.
	MaxTermLength = 512
)

// SortField enumerates supported sort keys. Relevance is the index's native
// ranking and the only sort the re-ranking policies apply on top of.
type SortField string

const (
	// SortRelevance orders by the index's native relevance ranking.
	SortRelevance SortField = "relevance"
	// SortReleaseDate orders by release date.
	SortReleaseDate SortField = "release_date"
	// SortPrice orders by price.
	SortPrice SortField = "price"
	// SortName orders by kit name.
	SortName SortField = "name"
)

// IsValid reports whether f is a known sort field.
func (f SortField) IsValid() bool {
	switch f {
	case SortRelevance, SortReleaseDate, SortPrice, SortName:
		return true
	}
	return false
}

// Sort is a sort specification: a field plus direction.
// The direction is ignored for relevance.
type Sort struct {
	Field SortField
	Desc  bool
}

// Facets holds the selected identifiers per filter facet.
// Semantics: OR within a facet, AND across facets. An empty list
// contributes no restriction for that facet.
type Facets struct {
	GradeIDs       []string
	ProductLineIDs []string
	MobileSuitIDs  []string
	SeriesIDs      []string
	ReleaseTypeIDs []string
}

// IsEmpty reports whether no facet carries a selection.
func (f Facets) IsEmpty() bool {
	return len(f.GradeIDs) == 0 && len(f.ProductLineIDs) == 0 &&
		len(f.MobileSuitIDs) == 0 && len(f.SeriesIDs) == 0 && len(f.ReleaseTypeIDs) == 0
}

// Merge returns the union of two facet selections, facet by facet.
func (f Facets) Merge(other Facets) Facets {
	return Facets{
		GradeIDs:       append(append([]string(nil), f.GradeIDs...), other.GradeIDs...),
		ProductLineIDs: append(append([]string(nil), f.ProductLineIDs...), other.ProductLineIDs...),
		MobileSuitIDs:  append(append([]string(nil), f.MobileSuitIDs...), other.MobileSuitIDs...),
		SeriesIDs:      append(append([]string(nil), f.SeriesIDs...), other.SeriesIDs...),
		ReleaseTypeIDs: append(append([]string(nil), f.ReleaseTypeIDs...), other.ReleaseTypeIDs...),
	}
}

// Criteria is a validated set of search criteria.
type Criteria struct {
	term   string
	facets Facets
	sort   Sort
	limit  int
	offset int
}

// New validates and normalizes search criteria.
// Defaults: sort=relevance, limit=20. Limit is clamped to MaxLimit,
// a negative offset is clamped to 0.
func New(term string, facets Facets, sort Sort, limit, offset int) (Criteria, error) {
	if len(term) > MaxTermLength {
		return Criteria{}, fmt.Errorf("%w: term too long (max %d chars)", domain.ErrInvalidCriteria, MaxTermLength)
	}
	if sort.Field == "" {
		sort.Field = SortRelevance
	}
	if !sort.Field.IsValid() {
		return Criteria{}, fmt.Errorf("%w: invalid sort field %q", domain.ErrInvalidCriteria, sort.Field)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Criteria{term: term, facets: facets, sort: sort, limit: limit, offset: offset}, nil
}

// Term returns the free-text search term.
func (c Criteria) Term() string { return c.term }

// Facets returns the per-facet identifier selections.
func (c Criteria) Facets() Facets { return c.facets }

// Sort returns the sort specification.
func (c Criteria) Sort() Sort { return c.sort }

// Limit returns the page size.
func (c Criteria) Limit() int { return c.limit }

// Offset returns the page offset.
func (c Criteria) Offset() int { return c.offset }

// ByRelevance reports whether results follow the index's relevance order,
// which is the precondition for the re-ranking policies.
func (c Criteria) ByRelevance() bool { return c.sort.Field == SortRelevance }

// WithFacets returns a copy of the criteria with the facet selections replaced.
func (c Criteria) WithFacets(f Facets) Criteria {
	c.facets = f
	return c
}
