// Package sync rebuilds the search index from the relational catalog.
package sync

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/gunplahub/kitsearch/internal/domain"
)

// Report summarizes a completed reindex run.
type Report struct {
	Kits        int
	MobileSuits int
	Elapsed     time.Duration
}

// Service rebuilds the index. At most one reindex runs at a time.
type Service struct {
	catalog   CatalogRepository
	index     IndexRepository
	logger    *zap.Logger
	documents *prometheus.CounterVec

	running atomic.Bool
}

// New creates a sync service.
func New(catalog CatalogRepository, index IndexRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, index: index, logger: logger}
}

// WithMetrics sets the per-collection indexed documents counter.
func (s *Service) WithMetrics(documents *prometheus.CounterVec) *Service {
	s.documents = documents
	return s
}

// EnsureIndexes creates any missing search indexes.
func (s *Service) EnsureIndexes(ctx context.Context) error {
	return s.index.EnsureIndexes(ctx)
}

// Reindex loads the full catalog and writes it into the search index.
// Returns domain.ErrSyncInProgress if another run holds the slot.
func (s *Service) Reindex(ctx context.Context) (Report, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Report{}, domain.ErrSyncInProgress
	}
	defer s.running.Store(false)

	started := time.Now()

	if err := s.index.EnsureIndexes(ctx); err != nil {
		return Report{}, fmt.Errorf("ensure indexes: %w", err)
	}

	kits, err := s.catalog.AllKits(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load kits: %w", err)
	}
	if err := s.index.IndexKits(ctx, kits); err != nil {
		return Report{}, fmt.Errorf("index kits: %w", err)
	}
	s.countDocuments("kits", len(kits))

	suits, err := s.catalog.AllMobileSuits(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load mobile suits: %w", err)
	}
	if err := s.index.IndexMobileSuits(ctx, suits); err != nil {
		return Report{}, fmt.Errorf("index mobile suits: %w", err)
	}
	s.countDocuments("mobile_suits", len(suits))

	report := Report{
		Kits:        len(kits),
		MobileSuits: len(suits),
		Elapsed:     time.Since(started),
	}
	s.logger.Info("reindex complete",
		zap.Int("kits", report.Kits),
		zap.Int("mobile_suits", report.MobileSuits),
		zap.Duration("elapsed", report.Elapsed))
	return report, nil
}

func (s *Service) countDocuments(collection string, n int) {
	if s.documents != nil {
		s.documents.WithLabelValues(collection).Add(float64(n))
	}
}
