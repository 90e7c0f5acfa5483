package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCriteria signals malformed search criteria.
	ErrInvalidCriteria = errors.New("invalid search criteria")
	// ErrSearchUnavailable signals that the search index could not serve a query.
	ErrSearchUnavailable = errors.New("search index unavailable")
	// ErrCatalogUnavailable signals that the relational catalog could not serve a query.
	ErrCatalogUnavailable = errors.New("catalog store unavailable")
	// ErrSyncInProgress signals that a reindex is already running.
	ErrSyncInProgress = errors.New("index sync already in progress")
)
