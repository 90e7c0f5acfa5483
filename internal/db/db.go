// Package db defines the storage contract for the search index backend.
// Consumers depend on the narrow sub-interfaces, not the full facade.
package db

import (
	"context"
	"time"
)

// Store is the index database facade combining all sub-interfaces.
type Store interface {
	Pinger
	HashStore
	IndexManager
	Searcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashSetItem holds a single key+fields pair for pipelined HSET.
type HashSetItem struct {
	Key    string
	Fields map[string]string
}

// HashStore provides the hash document operations the index sync needs.
type HashStore interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HSetMulti(ctx context.Context, items []HashSetItem) error
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// IndexManager provides FT index lifecycle operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
}

// Searcher provides full-text search over FT indexes.
type Searcher interface {
	Search(ctx context.Context, q *SearchQuery) (*SearchResult, error)
}

// FacetFilter restricts one tag field to a set of values (OR semantics).
// Multiple filters on a query combine with AND.
type FacetFilter struct {
	Field  string
	Values []string
}

// SortSpec orders results by a sortable field. A nil SortSpec on a query
// means the index's native relevance order.
type SortSpec struct {
	Field string
	Desc  bool
}

// SearchQuery describes one FT.SEARCH call. An empty Query matches all
// documents (subject to facet filters).
type SearchQuery struct {
	IndexName    string
	Query        string
	Facets       []FacetFilter
	Sort         *SortSpec
	Limit        int
	Offset       int
	ReturnFields []string
}

// SearchEntry is one raw hit: the document key and its returned fields.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// SearchResult holds raw hits plus the index's estimated total hit count.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}
