package kitindex

import (
	"testing"
	"time"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

func TestKitToFields_OptionalsOmitted(t *testing.T) {
	k := catalog.SearchableKit{
		ID:      "k1",
		Slug:    "rx-78-2",
		Name:    "RX-78-2 Gundam",
		GradeID: "g1",
	}

	f := kitToFields(k)

	for _, field := range []string{fieldReleaseTS, fieldPriceYen, fieldBaseKitID, fieldMobileSuitIDs} {
		if _, ok := f[field]; ok {
			t.Errorf("absent optional %s must not be written, got %q", field, f[field])
		}
	}
	if f[fieldSlug] != "rx-78-2" || f[fieldName] != "RX-78-2 Gundam" {
		t.Errorf("required fields lost: %v", f)
	}
}

func TestKitFields_RoundTrip(t *testing.T) {
	release := time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC)
	price := 4950
	base := "k-base"

	k := catalog.SearchableKit{
		ID:            "k1",
		Slug:          "rx-78-2-ver-ka",
		Name:          "RX-78-2 Gundam Ver.Ka",
		Number:        "MG-201",
		Variant:       "Ver.Ka",
		GradeID:       "g-mg",
		Grade:         "Master Grade",
		GradeSlug:     "mg",
		ProductLineID: "p1",
		ProductLine:   "MG",
		SeriesID:      "s1",
		Series:        "Mobile Suit Gundam",
		ReleaseTypeID: "r1",
		ReleaseType:   "General Release",
		ReleaseDate:   &release,
		PriceYen:      &price,
		BaseKitID:     &base,
		MobileSuitIDs: []string{"m1", "m2"},
	}

	got := kitFromFields("k1", kitToFields(k))

	if got.ID != "k1" || got.Name != k.Name || got.Variant != "Ver.Ka" {
		t.Errorf("identity fields wrong: %+v", got)
	}
	if got.ReleaseDate == nil || !got.ReleaseDate.Equal(release) {
		t.Errorf("release date wrong: %v", got.ReleaseDate)
	}
	if got.PriceYen == nil || *got.PriceYen != price {
		t.Errorf("price wrong: %v", got.PriceYen)
	}
	if got.BaseKitID == nil || *got.BaseKitID != base {
		t.Errorf("base kit id wrong: %v", got.BaseKitID)
	}
	if len(got.MobileSuitIDs) != 2 || got.MobileSuitIDs[0] != "m1" || got.MobileSuitIDs[1] != "m2" {
		t.Errorf("mobile suit ids wrong: %v", got.MobileSuitIDs)
	}
	if !got.IsVariant() {
		t.Error("kit with a base must report as variant")
	}
}

func TestKitFromFields_MalformedNumerics(t *testing.T) {
	got := kitFromFields("k1", map[string]string{
		fieldName:      "Zaku II",
		fieldReleaseTS: "not-a-timestamp",
		fieldPriceYen:  "abc",
	})

	if got.ReleaseDate != nil {
		t.Errorf("malformed timestamp must project to nil, got %v", got.ReleaseDate)
	}
	if got.PriceYen != nil {
		t.Errorf("malformed price must project to nil, got %v", got.PriceYen)
	}
	if got.Name != "Zaku II" {
		t.Errorf("valid fields must survive: %+v", got)
	}
}

func TestSearchableKitText(t *testing.T) {
	k := catalog.SearchableKit{
		Name:    "RX-78-2 Gundam",
		Variant: "Ver.Ka",
		Grade:   "Master Grade",
	}

	got := searchableKitText(k)
	if got != "RX-78-2 Gundam Ver.Ka Master Grade" {
		t.Errorf("unexpected text: %q", got)
	}
}

func TestMobileSuitFields_RoundTrip(t *testing.T) {
	ms := catalog.SearchableMobileSuit{
		ID:          "m1",
		Slug:        "zaku-ii",
		Name:        "Zaku II",
		SeriesID:    "s1",
		Series:      "Mobile Suit Gundam",
		Description: "Mass-produced mobile suit",
		KitCount:    14,
	}

	got := mobileSuitFromFields("m1", mobileSuitToFields(ms))

	if got.Name != "Zaku II" || got.KitCount != 14 || got.Slug != "zaku-ii" {
		t.Errorf("round trip lost fields: %+v", got)
	}
}
