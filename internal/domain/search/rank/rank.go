// Package rank implements the re-ranking policies applied on top of the
// index's native relevance order. Two policies exist for two call sites and
// are deliberately kept separate: Full for the paginated kits listing,
// Preview for the compact cross-entity search preview.
package rank

import (
	"sort"

	"github.com/gunplahub/kitsearch/internal/domain/catalog"
)

// EraCutoffYear partitions releases into "modern" and "older" buckets.
const EraCutoffYear = 2010

// gradePriority is the tie-break order for grade codes. Lower index ranks
// first; codes absent from the table rank after every listed code.
var gradePriority = []string{"pg", "mg", "rg", "hg", "eg", "fm"}

// era buckets: modern (>= cutoff), older (< cutoff), undated last.
// Dated kits always outrank undated ones regardless of era.
const (
	eraModern = iota
	eraOlder
	eraUndated
)

func eraBucket(k catalog.SearchableKit) int {
	if k.ReleaseDate == nil {
		return eraUndated
	}
	if k.ReleaseDate.Year() >= EraCutoffYear {
		return eraModern
	}
	return eraOlder
}

// GradeRank returns the priority index of a grade code. Codes not in the
// table rank after every listed code.
func GradeRank(gradeSlug string) int {
	for i, g := range gradePriority {
		if g == gradeSlug {
			return i
		}
	}
	return len(gradePriority)
}

// Full reorders candidates for the kits listing. The sort is a stable
// multi-key ordering: era bucket, then base-before-variant (skipped when
// variantIntent is true), then grade priority. Candidates equal on every
// key keep their input order, which is the index's relevance order.
//
// The input slice is not modified; a reordered copy is returned.
func Full(kits []catalog.SearchableKit, variantIntent bool) []catalog.SearchableKit {
	out := make([]catalog.SearchableKit, len(kits))
	copy(out, kits)

	// sort.SliceStable is required here: an unstable sort would reorder
	// equal-key candidates and discard the relevance signal.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		if ea, eb := eraBucket(a), eraBucket(b); ea != eb {
			return ea < eb
		}
		if !variantIntent {
			if av, bv := a.IsVariant(), b.IsVariant(); av != bv {
				return !av
			}
		}
		if ga, gb := GradeRank(a.GradeSlug), GradeRank(b.GradeSlug); ga != gb {
			return ga < gb
		}
		return false
	})

	return out
}

// Preview reorders candidates for the compact cross-entity preview. When
// prioritizeBase is set, base kits are moved ahead of variants (relative
// order preserved within each group); no era or grade sub-sorting is
// applied. The result is truncated to limit.
func Preview(kits []catalog.SearchableKit, prioritizeBase bool, limit int) []catalog.SearchableKit {
	if limit < 0 {
		limit = 0
	}

	out := kits
	if prioritizeBase {
		base := make([]catalog.SearchableKit, 0, len(kits))
		variants := make([]catalog.SearchableKit, 0, len(kits))
		for _, k := range kits {
			if k.IsVariant() {
				variants = append(variants, k)
			} else {
				base = append(base, k)
			}
		}
		out = append(base, variants...)
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
