package sync

import (
	"context"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

// CatalogRepository reads the full catalog from the relational store.
type CatalogRepository interface {
	AllKits(ctx context.Context) ([]catalog.SearchableKit, error)
	AllMobileSuits(ctx context.Context) ([]catalog.SearchableMobileSuit, error)
}

// IndexRepository writes catalog documents into the search index.
type IndexRepository interface {
	EnsureIndexes(ctx context.Context) error
	IndexKits(ctx context.Context, kits []catalog.SearchableKit) error
	IndexMobileSuits(ctx context.Context, suits []catalog.SearchableMobileSuit) error
}
