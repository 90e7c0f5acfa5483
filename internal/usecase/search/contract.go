package search

import (
	"context"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
)

// IndexRepository is the retrieval contract against the search index.
// Implementations perform no retries; errors propagate to the service,
// which owns the fallback decision.
type IndexRepository interface {
	SearchKits(ctx context.Context, crit criteria.Criteria, fetchLimit int) ([]catalog.SearchableKit, int, error)
	SearchMobileSuits(ctx context.Context, term string, limit int) ([]catalog.SearchableMobileSuit, int, error)
	SuggestKitNames(ctx context.Context, term string, fetch int) ([]string, error)
}

// FallbackRepository is the direct-database equivalent search used when
// the index is unavailable. Same output shapes, lower ranking fidelity.
type FallbackRepository interface {
	SearchKits(ctx context.Context, crit criteria.Criteria) ([]catalog.SearchableKit, int, error)
	SearchMobileSuits(ctx context.Context, term string, limit int) ([]catalog.SearchableMobileSuit, int, error)
	SuggestKitNames(ctx context.Context, term string, limit int) ([]string, error)
}
