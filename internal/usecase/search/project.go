package search

import "github.com/gunplahub/kitsearch/internal/domain/catalog"

// projectKitPage truncates a re-ranked candidate window to the page size
// and projects it. The offset was applied index-side, so truncation always
// starts at position 0 of the re-ranked list. HasMore follows the index's
// estimated total, not the fetched window.
func projectKitPage(kits []catalog.SearchableKit, total, limit, offset int) catalog.KitPage {
	if len(kits) > limit {
		kits = kits[:limit]
	}
	return catalog.KitPage{
		Kits:    projectKits(kits),
		Total:   total,
		HasMore: offset+limit < total,
	}
}

func projectKits(kits []catalog.SearchableKit) []catalog.KitSummary {
	out := make([]catalog.KitSummary, 0, len(kits))
	for _, k := range kits {
		out = append(out, catalog.KitSummary{
			ID:          k.ID,
			Slug:        k.Slug,
			Name:        k.Name,
			Number:      k.Number,
			Variant:     k.Variant,
			Grade:       k.Grade,
			ProductLine: k.ProductLine,
			Series:      k.Series,
			ReleaseType: k.ReleaseType,
			ReleaseDate: k.ReleaseDate,
			PriceYen:    k.PriceYen,
			IsVariant:   k.IsVariant(),
		})
	}
	return out
}

func projectMobileSuits(suits []catalog.SearchableMobileSuit) []catalog.MobileSuitSummary {
	out := make([]catalog.MobileSuitSummary, 0, len(suits))
	for _, ms := range suits {
		out = append(out, catalog.MobileSuitSummary{
			ID:          ms.ID,
			Slug:        ms.Slug,
			Name:        ms.Name,
			Series:      ms.Series,
			Description: ms.Description,
			KitCount:    ms.KitCount,
		})
	}
	return out
}
