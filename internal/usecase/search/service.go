// Package search orchestrates the catalog search pipeline: intent
// classification, index retrieval with over-fetch sizing, re-ranking,
// pagination, and the database fallback path.
package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
	"github.com/gunplahub/kitsearch/internal/domain/search/intent"
	"github.com/gunplahub/kitsearch/internal/domain/search/rank"
)

const (
	// overfetchCap bounds the re-ranking window; the comparator runs on an
	// in-memory list no larger than this.
	overfetchCap = 100

	// DefaultPreviewSize is the per-entity size of the cross-entity preview.
	DefaultPreviewSize = 8

	suggestionLimit = 5
	// suggestionFetch over-fetches so deduplication still fills the cap.
	suggestionFetch = 10
)

// Metrics entry/outcome label values.
const (
	entryFilteredKits = "filtered_kits"
	entryCrossSearch  = "cross_search"
	entrySuggestions  = "suggestions"

	outcomeOK       = "ok"
	outcomeFallback = "fallback"
	outcomeError    = "error"
)

// Service is the search pipeline entry point.
type Service struct {
	index       IndexRepository
	fallback    FallbackRepository
	previewSize int
	searches    *prometheus.CounterVec
	logger      *zap.Logger
}

// New creates a search service. searches may be nil to disable metrics.
func New(index IndexRepository, fallback FallbackRepository, searches *prometheus.CounterVec, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		index:       index,
		fallback:    fallback,
		previewSize: DefaultPreviewSize,
		searches:    searches,
		logger:      logger,
	}
}

// WithPreviewSize overrides the cross-entity preview size.
func (s *Service) WithPreviewSize(n int) *Service {
	if n > 0 {
		s.previewSize = n
	}
	return s
}

// FilteredKits runs the full kits-listing pipeline: classify intent,
// query the index (over-fetching when base-kit prioritization is active),
// re-rank, paginate, project. This entry point has no fallback: an index
// failure surfaces as an error and the caller shows an error state.
func (s *Service) FilteredKits(ctx context.Context, crit criteria.Criteria) (catalog.KitPage, error) {
	variantIntent := intent.IsVariantQuery(crit.Term())
	// Re-ranking only applies on top of relevance order; an explicit field
	// sort is served index-side and returned as-is.
	rerank := crit.ByRelevance()
	prioritizeBase := rerank && !variantIntent

	fetch := crit.Limit()
	if prioritizeBase {
		fetch = overfetchLimit(crit.Limit())
	}

	kits, total, err := s.index.SearchKits(ctx, crit, fetch)
	if err != nil {
		s.count(entryFilteredKits, outcomeError)
		s.logger.Error("kit search failed", zap.Error(err))
		return catalog.KitPage{}, fmt.Errorf("search kits: %w", err)
	}

	if rerank {
		kits = rank.Full(kits, variantIntent)
	}

	s.count(entryFilteredKits, outcomeOK)
	return projectKitPage(kits, total, crit.Limit(), crit.Offset()), nil
}

// SearchKitsAndMobileSuits runs the compact cross-entity search: kits and
// mobile suits queried in parallel, kits re-ranked with the lightweight
// preview policy. On any index failure the whole call falls back to the
// direct-database search once; a fallback failure propagates.
func (s *Service) SearchKitsAndMobileSuits(
	ctx context.Context, query string, facets criteria.Facets,
) (catalog.CrossResults, error) {
	crit, err := criteria.New(query, facets, criteria.Sort{}, s.previewSize, 0)
	if err != nil {
		return catalog.CrossResults{}, err
	}

	variantIntent := intent.IsVariantQuery(query)
	prioritizeBase := !variantIntent

	fetch := s.previewSize
	if prioritizeBase {
		fetch = overfetchLimit(s.previewSize)
	}

	var (
		kits       []catalog.SearchableKit
		suits      []catalog.SearchableMobileSuit
		totalKits  int
		totalSuits int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		kits, totalKits, err = s.index.SearchKits(gctx, crit, fetch)
		return err
	})
	g.Go(func() error {
		var err error
		suits, totalSuits, err = s.index.SearchMobileSuits(gctx, query, s.previewSize)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("index search failed, falling back to database", zap.Error(err))
		return s.crossSearchFallback(ctx, crit, query)
	}

	kits = rank.Preview(kits, prioritizeBase, s.previewSize)

	s.count(entryCrossSearch, outcomeOK)
	return crossResults(kits, suits, totalKits, totalSuits), nil
}

// Suggestions returns up to five deduplicated kit name suggestions, case
// as stored. An empty query yields no suggestions and no index call. On
// index failure the database fallback is queried once.
func (s *Service) Suggestions(ctx context.Context, query string) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	names, err := s.index.SuggestKitNames(ctx, query, suggestionFetch)
	if err != nil {
		s.logger.Warn("index suggestions failed, falling back to database", zap.Error(err))
		fbNames, fbErr := s.fallback.SuggestKitNames(ctx, query, suggestionLimit)
		if fbErr != nil {
			s.count(entrySuggestions, outcomeError)
			return nil, fmt.Errorf("suggest kit names fallback: %w", fbErr)
		}
		s.count(entrySuggestions, outcomeFallback)
		return dedupeNames(fbNames, suggestionLimit), nil
	}

	s.count(entrySuggestions, outcomeOK)
	return dedupeNames(names, suggestionLimit), nil
}

func (s *Service) crossSearchFallback(
	ctx context.Context, crit criteria.Criteria, query string,
) (catalog.CrossResults, error) {
	// The fallback substitutes the whole result, not part of it. Its own
	// errors are terminal for the request.
	kits, totalKits, err := s.fallback.SearchKits(ctx, crit)
	if err != nil {
		s.count(entryCrossSearch, outcomeError)
		return catalog.CrossResults{}, fmt.Errorf("fallback kit search: %w", err)
	}

	suits, totalSuits, err := s.fallback.SearchMobileSuits(ctx, query, s.previewSize)
	if err != nil {
		s.count(entryCrossSearch, outcomeError)
		return catalog.CrossResults{}, fmt.Errorf("fallback mobile suit search: %w", err)
	}

	if len(kits) > s.previewSize {
		kits = kits[:s.previewSize]
	}

	s.count(entryCrossSearch, outcomeFallback)
	return crossResults(kits, suits, totalKits, totalSuits), nil
}

func crossResults(
	kits []catalog.SearchableKit, suits []catalog.SearchableMobileSuit,
	totalKits, totalSuits int,
) catalog.CrossResults {
	return catalog.CrossResults{
		Kits:             projectKits(kits),
		MobileSuits:      projectMobileSuits(suits),
		TotalKits:        totalKits,
		TotalMobileSuits: totalSuits,
		HasMore:          totalKits > len(kits) || totalSuits > len(suits),
	}
}

// overfetchLimit sizes the re-ranking window: twice the page, capped.
func overfetchLimit(limit int) int {
	fetch := limit * 2
	if fetch > overfetchCap {
		return overfetchCap
	}
	return fetch
}

func dedupeNames(names []string, limit int) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, limit)
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) == limit {
			break
		}
	}
	return out
}

func (s *Service) count(entry, outcome string) {
	if s.searches != nil {
		s.searches.WithLabelValues(entry, outcome).Inc()
	}
}
