// Package chi implements the HTTP API over the chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/gunplahub/kitsearch/internal/domain"
	"github.com/gunplahub/kitsearch/internal/domain/search/criteria"
	"github.com/gunplahub/kitsearch/internal/logger"
	healthuc "github.com/gunplahub/kitsearch/internal/usecase/health"
	searchuc "github.com/gunplahub/kitsearch/internal/usecase/search"
	syncuc "github.com/gunplahub/kitsearch/internal/usecase/sync"
	taxonomyuc "github.com/gunplahub/kitsearch/internal/usecase/taxonomy"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the search pipeline over HTTP.
type Server struct {
	search          *searchuc.Service
	taxonomy        *taxonomyuc.Service
	sync            *syncuc.Service
	health          *healthuc.Service
	logger          *zap.Logger
	defaultPageSize int
	maxPageSize     int
	errorHandlers   []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	taxonomy *taxonomyuc.Service,
	sync *syncuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:          search,
		taxonomy:        taxonomy,
		sync:            sync,
		health:          health,
		logger:          logger,
		defaultPageSize: criteria.DefaultLimit,
		maxPageSize:     criteria.MaxLimit,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrInvalidCriteria, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrSyncInProgress, http.StatusConflict, CodeSyncInProgress),
		sentinelHandler(domain.ErrSearchUnavailable, http.StatusServiceUnavailable, CodeSearchDown),
		sentinelHandler(domain.ErrCatalogUnavailable, http.StatusServiceUnavailable, CodeCatalogDown),
	}
	return s
}

// WithPagination overrides the listing page size bounds.
func (s *Server) WithPagination(defaultSize, maxSize int) *Server {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// RegisterRoutes mounts all API routes on the router.
func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/v1/kits", s.ListKits)
	r.Get("/v1/search", s.Search)
	r.Get("/v1/search/suggestions", s.Suggestions)
	r.Get("/v1/filters", s.FilterData)
	r.Post("/v1/admin/reindex", s.Reindex)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// ListKits handles GET /v1/kits: the filtered, re-ranked kits listing.
func (s *Server) ListKits(w http.ResponseWriter, r *http.Request) {
	params, err := parseKitListParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	facets, err := s.taxonomy.ResolveFacetSlugs(r.Context(), params.slugs)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	limit := params.limit
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	crit, err := criteria.New(params.query, facets, params.sort, limit, params.offset)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	page, err := s.search.FilteredKits(r.Context(), crit)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, KitListResponse{
		Items:   kitsToDTO(page.Kits),
		Total:   page.Total,
		HasMore: page.HasMore,
		Limit:   crit.Limit(),
		Offset:  crit.Offset(),
	})
}

// Search handles GET /v1/search: the compact cross-entity preview.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	params, err := parseKitListParams(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	facets, err := s.taxonomy.ResolveFacetSlugs(r.Context(), params.slugs)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	results, err := s.search.SearchKitsAndMobileSuits(r.Context(), params.query, facets)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		Kits:             kitsToDTO(results.Kits),
		MobileSuits:      mobileSuitsToDTO(results.MobileSuits),
		TotalKits:        results.TotalKits,
		TotalMobileSuits: results.TotalMobileSuits,
		HasMore:          results.HasMore,
	})
}

// Suggestions handles GET /v1/search/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	names, err := s.search.Suggestions(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if names == nil {
		names = []string{}
	}

	writeJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: names})
}

// FilterData handles GET /v1/filters.
func (s *Server) FilterData(w http.ResponseWriter, r *http.Request) {
	fd, err := s.taxonomy.FilterData(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, filterDataToDTO(fd))
}

// Reindex handles POST /v1/admin/reindex.
func (s *Server) Reindex(w http.ResponseWriter, r *http.Request) {
	report, err := s.sync.Reindex(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reindexToDTO(report))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthToDTO(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorResponseCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrInvalidCriteria,
		domain.ErrNotFound,
		domain.ErrSyncInProgress,
		domain.ErrSearchUnavailable,
		domain.ErrCatalogUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorResponseCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// requestLogger prefers the request-scoped logger from the context so
// error lines keep their request id.
func (s *Server) requestLogger(r *http.Request) *zap.Logger {
	if l, ok := logger.FromContext(r.Context()); ok {
		return l
	}
	return s.logger
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := s.requestLogger(r)
	log.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
