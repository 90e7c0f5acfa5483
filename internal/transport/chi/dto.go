package chi

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
	healthuc "github.com/gunplahub/kitsearch/internal/usecase/health"
	syncuc "github.com/gunplahub/kitsearch/internal/usecase/sync"
)

// ErrorResponseCode enumerates machine-readable API error codes.
type ErrorResponseCode string

// API error codes.
const (
	CodeBadRequest       ErrorResponseCode = "bad_request"
	CodeValidationFailed ErrorResponseCode = "validation_failed"
	CodeNotFound         ErrorResponseCode = "not_found"
	CodeSyncInProgress   ErrorResponseCode = "sync_in_progress"
	CodeSearchDown       ErrorResponseCode = "search_unavailable"
	CodeCatalogDown      ErrorResponseCode = "catalog_unavailable"
	CodeInternalError    ErrorResponseCode = "internal_error"
)

// ErrorResponse is the API error envelope.
type ErrorResponse struct {
	Code    ErrorResponseCode `json:"code"`
	Message string            `json:"message"`
}

// Kit is the API projection of a catalog kit.
type Kit struct {
	Id          string              `json:"id"`
	Slug        string              `json:"slug"`
	Name        string              `json:"name"`
	Number      string              `json:"number"`
	Variant     *string             `json:"variant,omitempty"`
	Grade       string              `json:"grade"`
	ProductLine string              `json:"product_line"`
	Series      string              `json:"series"`
	ReleaseType string              `json:"release_type"`
	ReleaseDate *openapi_types.Date `json:"release_date,omitempty"`
	PriceYen    *int                `json:"price_yen,omitempty"`
	IsVariant   bool                `json:"is_variant"`
}

// MobileSuit is the API projection of a catalog mobile suit.
type MobileSuit struct {
	Id          string  `json:"id"`
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Series      string  `json:"series"`
	Description *string `json:"description,omitempty"`
	KitCount    int     `json:"kit_count"`
}

// KitListResponse is one page of the filtered kits listing.
type KitListResponse struct {
	Items   []Kit `json:"items"`
	Total   int   `json:"total"`
	HasMore bool  `json:"has_more"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
}

// SearchResponse is the compact cross-entity search preview.
type SearchResponse struct {
	Kits             []Kit        `json:"kits"`
	MobileSuits      []MobileSuit `json:"mobile_suits"`
	TotalKits        int          `json:"total_kits"`
	TotalMobileSuits int          `json:"total_mobile_suits"`
	HasMore          bool         `json:"has_more"`
}

// SuggestionsResponse carries autocomplete suggestions.
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// FilterEntry is one taxonomy row in the filter data response.
type FilterEntry struct {
	Id   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FilterDataResponse carries every filter taxonomy.
type FilterDataResponse struct {
	Grades       []FilterEntry `json:"grades"`
	ProductLines []FilterEntry `json:"product_lines"`
	MobileSuits  []FilterEntry `json:"mobile_suits"`
	Series       []FilterEntry `json:"series"`
	ReleaseTypes []FilterEntry `json:"release_types"`
}

// ReindexResponse summarizes a completed reindex run.
type ReindexResponse struct {
	Kits        int   `json:"kits"`
	MobileSuits int   `json:"mobile_suits"`
	ElapsedMs   int64 `json:"elapsed_ms"`
}

// HealthResponse reports component health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func kitToDTO(k catalog.KitSummary) Kit {
	out := Kit{
		Id:          k.ID,
		Slug:        k.Slug,
		Name:        k.Name,
		Number:      k.Number,
		Grade:       k.Grade,
		ProductLine: k.ProductLine,
		Series:      k.Series,
		ReleaseType: k.ReleaseType,
		PriceYen:    k.PriceYen,
		IsVariant:   k.IsVariant,
	}
	if k.Variant != "" {
		v := k.Variant
		out.Variant = &v
	}
	if k.ReleaseDate != nil {
		d := openapi_types.Date{Time: *k.ReleaseDate}
		out.ReleaseDate = &d
	}
	return out
}

func kitsToDTO(kits []catalog.KitSummary) []Kit {
	out := make([]Kit, len(kits))
	for i, k := range kits {
		out[i] = kitToDTO(k)
	}
	return out
}

func mobileSuitToDTO(m catalog.MobileSuitSummary) MobileSuit {
	out := MobileSuit{
		Id:       m.ID,
		Slug:     m.Slug,
		Name:     m.Name,
		Series:   m.Series,
		KitCount: m.KitCount,
	}
	if m.Description != "" {
		d := m.Description
		out.Description = &d
	}
	return out
}

func mobileSuitsToDTO(suits []catalog.MobileSuitSummary) []MobileSuit {
	out := make([]MobileSuit, len(suits))
	for i, m := range suits {
		out[i] = mobileSuitToDTO(m)
	}
	return out
}

func filterDataToDTO(fd catalog.FilterData) FilterDataResponse {
	return FilterDataResponse{
		Grades:       taxonomyToDTO(fd.Grades),
		ProductLines: taxonomyToDTO(fd.ProductLines),
		MobileSuits:  taxonomyToDTO(fd.MobileSuits),
		Series:       taxonomyToDTO(fd.Series),
		ReleaseTypes: taxonomyToDTO(fd.ReleaseTypes),
	}
}

func taxonomyToDTO(entries []catalog.TaxonomyEntry) []FilterEntry {
	out := make([]FilterEntry, len(entries))
	for i, e := range entries {
		out[i] = FilterEntry{Id: e.ID, Name: e.Name, Slug: e.Slug}
	}
	return out
}

func reindexToDTO(r syncuc.Report) ReindexResponse {
	return ReindexResponse{
		Kits:        r.Kits,
		MobileSuits: r.MobileSuits,
		ElapsedMs:   r.Elapsed.Milliseconds(),
	}
}

func healthToDTO(r healthuc.Report) HealthResponse {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return HealthResponse{Status: string(r.Status), Checks: checks}
}
