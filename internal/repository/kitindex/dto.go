package kitindex

import (
	"strconv"
	"strings"
	"time"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

// Hash field names shared by the read path, the write path, and the FT
// schema. Multi-value tags use comma separators.
const (
	fieldSlug          = "slug"
	fieldName          = "name"
	fieldNumber        = "number"
	fieldVariant       = "variant"
	fieldGradeID       = "grade_id"
	fieldGrade         = "grade"
	fieldGradeSlug     = "grade_slug"
	fieldProductLineID = "product_line_id"
	fieldProductLine   = "product_line"
	fieldSeriesID      = "series_id"
	fieldSeries        = "series"
	fieldReleaseTypeID = "release_type_id"
	fieldReleaseType   = "release_type"
	fieldReleaseTS     = "release_ts"
	fieldPriceYen      = "price_yen"
	fieldBaseKitID     = "base_kit_id"
	fieldMobileSuitIDs = "mobile_suit_ids"
	fieldText          = "searchable_text"
	fieldDescription   = "description"
	fieldKitCount      = "kit_count"

	tagSeparator = ","
)

var kitReturnFields = []string{
	fieldSlug, fieldName, fieldNumber, fieldVariant,
	fieldGradeID, fieldGrade, fieldGradeSlug,
	fieldProductLineID, fieldProductLine,
	fieldSeriesID, fieldSeries,
	fieldReleaseTypeID, fieldReleaseType,
	fieldReleaseTS, fieldPriceYen, fieldBaseKitID, fieldMobileSuitIDs,
}

var mobileSuitReturnFields = []string{
	fieldSlug, fieldName, fieldSeriesID, fieldSeries, fieldDescription, fieldKitCount,
}

// kitToFields flattens a kit into index hash fields. Absent optionals are
// simply omitted so their absence round-trips as nil.
func kitToFields(k catalog.SearchableKit) map[string]string {
	f := map[string]string{
		fieldSlug:          k.Slug,
		fieldName:          k.Name,
		fieldNumber:        k.Number,
		fieldVariant:       k.Variant,
		fieldGradeID:       k.GradeID,
		fieldGrade:         k.Grade,
		fieldGradeSlug:     k.GradeSlug,
		fieldProductLineID: k.ProductLineID,
		fieldProductLine:   k.ProductLine,
		fieldSeriesID:      k.SeriesID,
		fieldSeries:        k.Series,
		fieldReleaseTypeID: k.ReleaseTypeID,
		fieldReleaseType:   k.ReleaseType,
		fieldText:          searchableKitText(k),
	}
	if k.ReleaseDate != nil {
		f[fieldReleaseTS] = strconv.FormatInt(k.ReleaseDate.Unix(), 10)
	}
	if k.PriceYen != nil {
		f[fieldPriceYen] = strconv.Itoa(*k.PriceYen)
	}
	if k.BaseKitID != nil {
		f[fieldBaseKitID] = *k.BaseKitID
	}
	if len(k.MobileSuitIDs) > 0 {
		f[fieldMobileSuitIDs] = strings.Join(k.MobileSuitIDs, tagSeparator)
	}
	return f
}

// kitFromFields rebuilds a kit from index hash fields. Coercions never
// fail hard: a malformed numeric field projects to nil.
func kitFromFields(id string, fields map[string]string) catalog.SearchableKit {
	k := catalog.SearchableKit{
		ID:            id,
		Slug:          fields[fieldSlug],
		Name:          fields[fieldName],
		Number:        fields[fieldNumber],
		Variant:       fields[fieldVariant],
		GradeID:       fields[fieldGradeID],
		Grade:         fields[fieldGrade],
		GradeSlug:     fields[fieldGradeSlug],
		ProductLineID: fields[fieldProductLineID],
		ProductLine:   fields[fieldProductLine],
		SeriesID:      fields[fieldSeriesID],
		Series:        fields[fieldSeries],
		ReleaseTypeID: fields[fieldReleaseTypeID],
		ReleaseType:   fields[fieldReleaseType],
	}

	if ts, ok := fields[fieldReleaseTS]; ok && ts != "" {
		if unix, err := strconv.ParseInt(ts, 10, 64); err == nil {
			t := time.Unix(unix, 0).UTC()
			k.ReleaseDate = &t
		}
	}
	if p, ok := fields[fieldPriceYen]; ok && p != "" {
		if price, err := strconv.Atoi(p); err == nil {
			k.PriceYen = &price
		}
	}
	if base, ok := fields[fieldBaseKitID]; ok && base != "" {
		b := base
		k.BaseKitID = &b
	}
	if ids, ok := fields[fieldMobileSuitIDs]; ok && ids != "" {
		k.MobileSuitIDs = strings.Split(ids, tagSeparator)
	}

	return k
}

func mobileSuitToFields(ms catalog.SearchableMobileSuit) map[string]string {
	return map[string]string{
		fieldSlug:        ms.Slug,
		fieldName:        ms.Name,
		fieldSeriesID:    ms.SeriesID,
		fieldSeries:      ms.Series,
		fieldDescription: ms.Description,
		fieldKitCount:    strconv.Itoa(ms.KitCount),
		fieldText:        searchableMobileSuitText(ms),
	}
}

func mobileSuitFromFields(id string, fields map[string]string) catalog.SearchableMobileSuit {
	ms := catalog.SearchableMobileSuit{
		ID:          id,
		Slug:        fields[fieldSlug],
		Name:        fields[fieldName],
		SeriesID:    fields[fieldSeriesID],
		Series:      fields[fieldSeries],
		Description: fields[fieldDescription],
	}
	if c, err := strconv.Atoi(fields[fieldKitCount]); err == nil {
		ms.KitCount = c
	}
	return ms
}

// searchableKitText concatenates everything full-text matching should see.
func searchableKitText(k catalog.SearchableKit) string {
	parts := []string{
		k.Name, k.Number, k.Variant,
		k.Grade, k.GradeSlug, k.ProductLine, k.Series, k.ReleaseType,
	}
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.Join(fields, " ")
}

func searchableMobileSuitText(ms catalog.SearchableMobileSuit) string {
	parts := []string{ms.Name, ms.Series, ms.Description}
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			fields = append(fields, p)
		}
	}
	return strings.Join(fields, " ")
}
