package taxonomy

import (
	"context"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

// Repository reads filter taxonomies from the relational store.
type Repository interface {
	Taxonomy(ctx context.Context, table string) ([]catalog.TaxonomyEntry, error)
	ResolveSlugs(ctx context.Context, table string, slugs []string) ([]string, error)
}
