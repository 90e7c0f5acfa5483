package kitsearch

import "go.uber.org/zap"

// Option configures the client.
type Option func(*clientConfig)

type clientConfig struct {
	driver   string // "valkey" or "redis"
	addrs    []string
	username string
	password string

	postgresDSN string

	previewSize int

	logger *zap.Logger
}

// WithValkey configures the client to connect to a Valkey search index.
func WithValkey(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "valkey"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithRedis configures the client to connect to a Redis search index.
func WithRedis(addr, password string) Option {
	return func(c *clientConfig) {
		c.driver = "redis"
		c.addrs = []string{addr}
		c.password = password
	}
}

// WithUsername sets the index store username (ACL setups).
func WithUsername(username string) Option {
	return func(c *clientConfig) {
		c.username = username
	}
}

// WithPostgres configures the relational catalog connection. Required:
// the catalog backs the filter taxonomies, the fallback search path, and
// reindexing.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.postgresDSN = dsn
	}
}

// WithPreviewSize overrides the per-entity size of cross-search previews.
func WithPreviewSize(n int) Option {
	return func(c *clientConfig) {
		c.previewSize = n
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}
