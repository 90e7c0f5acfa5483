package health

import "context"

// IndexPinger checks search index availability.
type IndexPinger interface {
	Ping(ctx context.Context) error
}

// CatalogPinger checks relational store availability.
type CatalogPinger interface {
	Ping(ctx context.Context) error
}
