// Package kitsearch is an embedded client for the Gunpla catalog search
// pipeline: filtered kit listings with variant-aware re-ranking, compact
// cross-entity search, and autocomplete suggestions, served from a
// RediSearch-compatible index with a relational fallback.
package kitsearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gunplahub/kitsearch/internal/db/redisearch"
	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
	"github.com/gunplahub/kitsearch/internal/pg"
	"github.com/gunplahub/kitsearch/internal/repository/kitindex"
	searchuc "github.com/gunplahub/kitsearch/internal/usecase/search"
	syncuc "github.com/gunplahub/kitsearch/internal/usecase/sync"
	taxonomyuc "github.com/gunplahub/kitsearch/internal/usecase/taxonomy"
)

const defaultReadinessTimeout = 10 * time.Second

// Client is the kitsearch entry point.
type Client struct {
	store       *redisearch.Store
	catalog     *pg.Store
	searchSvc   *searchuc.Service
	taxonomySvc *taxonomyuc.Service
	syncSvc     *syncuc.Service
}

// New creates a kitsearch Client and connects to both stores.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("kitsearch: index address required (use WithValkey or WithRedis)")
	}
	if cfg.postgresDSN == "" {
		return nil, errors.New("kitsearch: catalog DSN required (use WithPostgres)")
	}

	log := cfg.logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("connecting to search index",
		zap.String("driver", cfg.driver),
		zap.Strings("addrs", cfg.addrs),
	)

	store, err := redisearch.NewStore(redisearch.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("kitsearch: create index store: %w", err)
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("kitsearch: index store not ready: %w", err)
	}

	catalogStore, err := pg.NewStore(ctx, cfg.postgresDSN)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("kitsearch: connect catalog: %w", err)
	}

	indexRepo := kitindex.New(store)

	searchSvc := searchuc.New(indexRepo, catalogStore, nil, log)
	if cfg.previewSize > 0 {
		searchSvc = searchSvc.WithPreviewSize(cfg.previewSize)
	}

	return &Client{
		store:       store,
		catalog:     catalogStore,
		searchSvc:   searchSvc,
		taxonomySvc: taxonomyuc.New(catalogStore),
		syncSvc:     syncuc.New(catalogStore, indexRepo, log),
	}, nil
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
	if c.catalog != nil {
		c.catalog.Close()
	}
}

// Ping checks index store connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// FilteredKits runs the filtered, re-ranked kits listing.
func (c *Client) FilteredKits(ctx context.Context, q Query) (KitPage, error) {
	crit, err := criteria.New(
		q.Term,
		facetsToInternal(q.Facets),
		criteria.Sort{Field: criteria.SortField(q.SortBy), Desc: q.Desc},
		q.Limit,
		q.Offset,
	)
	if err != nil {
		return KitPage{}, fmt.Errorf("kitsearch: %w", err)
	}

	page, err := c.searchSvc.FilteredKits(ctx, crit)
	if err != nil {
		return KitPage{}, fmt.Errorf("kitsearch: %w", err)
	}

	return KitPage{
		Kits:    kitsFromInternal(page.Kits),
		Total:   page.Total,
		HasMore: page.HasMore,
	}, nil
}

// Search runs the compact cross-entity search over kits and mobile suits.
func (c *Client) Search(ctx context.Context, term string, facets Facets) (CrossResults, error) {
	results, err := c.searchSvc.SearchKitsAndMobileSuits(ctx, term, facetsToInternal(facets))
	if err != nil {
		return CrossResults{}, fmt.Errorf("kitsearch: %w", err)
	}

	return CrossResults{
		Kits:             kitsFromInternal(results.Kits),
		MobileSuits:      mobileSuitsFromInternal(results.MobileSuits),
		TotalKits:        results.TotalKits,
		TotalMobileSuits: results.TotalMobileSuits,
		HasMore:          results.HasMore,
	}, nil
}

// Suggestions returns up to five kit name suggestions for the term.
func (c *Client) Suggestions(ctx context.Context, term string) ([]string, error) {
	names, err := c.searchSvc.Suggestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("kitsearch: %w", err)
	}
	return names, nil
}

// FilterData returns every filter taxonomy.
func (c *Client) FilterData(ctx context.Context) (FilterData, error) {
	fd, err := c.taxonomySvc.FilterData(ctx)
	if err != nil {
		return FilterData{}, fmt.Errorf("kitsearch: %w", err)
	}

	return FilterData{
		Grades:       taxonomyFromInternal(fd.Grades),
		ProductLines: taxonomyFromInternal(fd.ProductLines),
		MobileSuits:  taxonomyFromInternal(fd.MobileSuits),
		Series:       taxonomyFromInternal(fd.Series),
		ReleaseTypes: taxonomyFromInternal(fd.ReleaseTypes),
	}, nil
}

// Reindex rebuilds the search index from the relational catalog.
func (c *Client) Reindex(ctx context.Context) (ReindexReport, error) {
	report, err := c.syncSvc.Reindex(ctx)
	if err != nil {
		return ReindexReport{}, fmt.Errorf("kitsearch: %w", err)
	}
	return ReindexReport{
		Kits:        report.Kits,
		MobileSuits: report.MobileSuits,
		Elapsed:     report.Elapsed,
	}, nil
}

func facetsToInternal(f Facets) criteria.Facets {
	return criteria.Facets{
		GradeIDs:       f.GradeIDs,
		ProductLineIDs: f.ProductLineIDs,
		MobileSuitIDs:  f.MobileSuitIDs,
		SeriesIDs:      f.SeriesIDs,
		ReleaseTypeIDs: f.ReleaseTypeIDs,
	}
}

func kitsFromInternal(kits []catalog.KitSummary) []Kit {
	out := make([]Kit, len(kits))
	for i, k := range kits {
		out[i] = Kit{
			ID:          k.ID,
			Slug:        k.Slug,
			Name:        k.Name,
			Number:      k.Number,
			Variant:     k.Variant,
			Grade:       k.Grade,
			ProductLine: k.ProductLine,
			Series:      k.Series,
			ReleaseType: k.ReleaseType,
			ReleaseDate: k.ReleaseDate,
			PriceYen:    k.PriceYen,
			IsVariant:   k.IsVariant,
		}
	}
	return out
}

func mobileSuitsFromInternal(suits []catalog.MobileSuitSummary) []MobileSuit {
	out := make([]MobileSuit, len(suits))
	for i, m := range suits {
		out[i] = MobileSuit{
			ID:          m.ID,
			Slug:        m.Slug,
			Name:        m.Name,
			Series:      m.Series,
			Description: m.Description,
			KitCount:    m.KitCount,
		}
	}
	return out
}

func taxonomyFromInternal(entries []catalog.TaxonomyEntry) []FilterEntry {
	out := make([]FilterEntry, len(entries))
	for i, e := range entries {
		out[i] = FilterEntry{ID: e.ID, Name: e.Name, Slug: e.Slug}
	}
	return out
}
