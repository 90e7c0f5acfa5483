// Package catalog defines the entities flowing through the search pipeline:
// index-side searchable documents and the flat summaries projected to callers.
package catalog

import "time"

// SearchableKit is a kit document as materialized in the search index.
// It is read-only from the pipeline's perspective; the sync process owns
// writes. A nil BaseKitID marks the canonical (base) release of a kit,
// a non-nil one marks a variant (recolor, coating, special edition).
type SearchableKit struct {
	ID            string
	Slug          string
	Name          string
	Number        string
	Variant       string
	GradeID       string
	Grade         string
	GradeSlug     string
	ProductLineID string
	ProductLine   string
	SeriesID      string
	Series        string
	ReleaseTypeID string
	ReleaseType   string
	ReleaseDate   *time.Time
	PriceYen      *int
	BaseKitID     *string
	MobileSuitIDs []string
}

// IsVariant reports whether the kit is a variant of another kit.
func (k SearchableKit) IsVariant() bool { return k.BaseKitID != nil }

// SearchableMobileSuit is a mobile suit document in the search index.
type SearchableMobileSuit struct {
	ID          string
	Slug        string
	Name        string
	SeriesID    string
	Series      string
	Description string
	KitCount    int
}

// KitSummary is the caller-facing projection of a SearchableKit: nested
// relations flattened to display strings, missing relations projected to
// zero values rather than erroring.
type KitSummary struct {
	ID          string     `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Number      string     `json:"number"`
	Variant     string     `json:"variant,omitempty"`
	Grade       string     `json:"grade"`
	ProductLine string     `json:"productLine"`
	Series      string     `json:"series"`
	ReleaseType string     `json:"releaseType"`
	ReleaseDate *time.Time `json:"releaseDate"`
	PriceYen    *int       `json:"priceYen"`
	IsVariant   bool       `json:"isVariant"`
}

// MobileSuitSummary is the caller-facing projection of a SearchableMobileSuit.
type MobileSuitSummary struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Series      string `json:"series"`
	Description string `json:"description,omitempty"`
	KitCount    int    `json:"kitCount"`
}

// KitPage is one page of re-ranked kit results.
// len(Kits) never exceeds the requested limit.
type KitPage struct {
	Kits    []KitSummary `json:"kits"`
	Total   int          `json:"total"`
	HasMore bool         `json:"hasMore"`
}

// CrossResults is the compact cross-entity search preview.
type CrossResults struct {
	Kits             []KitSummary        `json:"kits"`
	MobileSuits      []MobileSuitSummary `json:"mobileSuits"`
	TotalKits        int                 `json:"totalKits"`
	TotalMobileSuits int                 `json:"totalMobileSuits"`
	HasMore          bool                `json:"hasMore"`
}

// TaxonomyEntry is a single filter taxonomy row (grade, series, ...).
type TaxonomyEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// FilterData holds every filter taxonomy used to populate the filter UI.
type FilterData struct {
	Grades       []TaxonomyEntry `json:"grades"`
	ProductLines []TaxonomyEntry `json:"productLines"`
	MobileSuits  []TaxonomyEntry `json:"mobileSuits"`
	Series       []TaxonomyEntry `json:"series"`
	ReleaseTypes []TaxonomyEntry `json:"releaseTypes"`
}
