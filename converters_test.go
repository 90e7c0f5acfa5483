package kitsearch

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

func TestFacetsToInternal(t *testing.T) {
	f := Facets{
		GradeIDs:       []string{"g1", "g2"},
		ProductLineIDs: []string{"p1"},
		MobileSuitIDs:  []string{"m1"},
		SeriesIDs:      []string{"s1"},
		ReleaseTypeIDs: []string{"r1"},
	}

	got := facetsToInternal(f)
	if len(got.GradeIDs) != 2 || got.GradeIDs[0] != "g1" {
		t.Errorf("GradeIDs = %v", got.GradeIDs)
	}
	if len(got.ProductLineIDs) != 1 || len(got.MobileSuitIDs) != 1 ||
		len(got.SeriesIDs) != 1 || len(got.ReleaseTypeIDs) != 1 {
		t.Errorf("facets lost: %+v", got)
	}
}

func TestKitsFromInternal(t *testing.T) {
	release := time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC)
	price := 5500

	kits := kitsFromInternal([]catalog.KitSummary{{
		ID:          "k1",
		Slug:        "rx-78-2-ver-ka",
		Name:        "RX-78-2 Gundam Ver.Ka",
		Number:      "MG-201",
		Variant:     "Ver.Ka",
		Grade:       "Master Grade",
		ProductLine: "MG",
		Series:      "Mobile Suit Gundam",
		ReleaseType: "General Release",
		ReleaseDate: &release,
		PriceYen:    &price,
		IsVariant:   true,
	}})

	if len(kits) != 1 {
		t.Fatalf("len = %d, want 1", len(kits))
	}
	k := kits[0]
	if k.ID != "k1" || k.Name != "RX-78-2 Gundam Ver.Ka" || k.Variant != "Ver.Ka" {
		t.Errorf("kit = %+v", k)
	}
	if k.ReleaseDate == nil || !k.ReleaseDate.Equal(release) {
		t.Errorf("ReleaseDate = %v", k.ReleaseDate)
	}
	if k.PriceYen == nil || *k.PriceYen != price {
		t.Errorf("PriceYen = %v", k.PriceYen)
	}
	if !k.IsVariant {
		t.Error("IsVariant lost")
	}
}

func TestMobileSuitsFromInternal(t *testing.T) {
	suits := mobileSuitsFromInternal([]catalog.MobileSuitSummary{{
		ID:       "m1",
		Slug:     "zaku-ii",
		Name:     "Zaku II",
		Series:   "Mobile Suit Gundam",
		KitCount: 14,
	}})

	if len(suits) != 1 || suits[0].Name != "Zaku II" || suits[0].KitCount != 14 {
		t.Errorf("suits = %+v", suits)
	}
}

func TestTaxonomyFromInternal(t *testing.T) {
	entries := taxonomyFromInternal([]catalog.TaxonomyEntry{
		{ID: "g1", Name: "High Grade", Slug: "hg"},
	})

	if len(entries) != 1 || entries[0].Slug != "hg" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestNew_RequiresIndexAddress(t *testing.T) {
	_, err := New(context.Background(), WithPostgres("postgres://localhost/gunpla"))
	if err == nil {
		t.Fatal("expected error without index address")
	}
}

func TestNew_RequiresDSN(t *testing.T) {
	_, err := New(context.Background(), WithValkey("localhost:6379", ""))
	if err == nil {
		t.Fatal("expected error without catalog dsn")
	}
}

func TestNew_LogsIndexDriver(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	// Port 1 on loopback refuses connections; New fails after the
	// startup line is emitted.
	_, err := New(ctx,
		WithValkey("127.0.0.1:1", ""),
		WithPostgres("postgres://localhost/gunpla"),
		WithLogger(zap.New(core)),
	)
	if err == nil {
		t.Fatal("expected connection error")
	}

	entries := logs.FilterMessage("connecting to search index").All()
	if len(entries) != 1 {
		t.Fatalf("expected one startup line, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["driver"]; got != "valkey" {
		t.Errorf("driver = %v, want valkey", got)
	}
}
