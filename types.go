package kitsearch

import "time"

// SortField enumerates supported sort keys for the kits listing.
type SortField string

// Supported sort fields.
const (
	SortRelevance   SortField = "relevance"
	SortReleaseDate SortField = "release_date"
	SortPrice       SortField = "price"
	SortName        SortField = "name"
)

// Facets holds the selected identifiers per filter facet.
// OR within a facet, AND across facets.
type Facets struct {
	GradeIDs       []string
	ProductLineIDs []string
	MobileSuitIDs  []string
	SeriesIDs      []string
	ReleaseTypeIDs []string
}

// Query describes a kits listing request.
type Query struct {
	Term   string
	Facets Facets
	SortBy SortField // default: relevance
	Desc   bool
	Limit  int // default: 20, max: 100
	Offset int
}

// Kit is one kit in a result set.
type Kit struct {
	ID          string
	Slug        string
	Name        string
	Number      string
	Variant     string
	Grade       string
	ProductLine string
	Series      string
	ReleaseType string
	ReleaseDate *time.Time
	PriceYen    *int
	IsVariant   bool
}

// MobileSuit is one mobile suit in a cross-search result.
type MobileSuit struct {
	ID          string
	Slug        string
	Name        string
	Series      string
	Description string
	KitCount    int
}

// KitPage is one page of the filtered kits listing.
type KitPage struct {
	Kits    []Kit
	Total   int
	HasMore bool
}

// CrossResults is the compact cross-entity search preview.
type CrossResults struct {
	Kits             []Kit
	MobileSuits      []MobileSuit
	TotalKits        int
	TotalMobileSuits int
	HasMore          bool
}

// FilterEntry is one taxonomy row.
type FilterEntry struct {
	ID   string
	Name string
	Slug string
}

// FilterData holds every filter taxonomy.
type FilterData struct {
	Grades       []FilterEntry
	ProductLines []FilterEntry
	MobileSuits  []FilterEntry
	Series       []FilterEntry
	ReleaseTypes []FilterEntry
}

// ReindexReport summarizes a completed reindex run.
type ReindexReport struct {
	Kits        int
	MobileSuits int
	Elapsed     time.Duration
}
