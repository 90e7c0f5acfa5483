package criteria

import (
	"errors"
	"strings"
	"testing"

	"github.com/gunplahub/kitsearch/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	c, err := New("", Facets{}, Sort{}, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Sort().Field != SortRelevance {
		t.Errorf("expected relevance sort, got %q", c.Sort().Field)
	}
	if c.Limit() != DefaultLimit {
		t.Errorf("expected limit %d, got %d", DefaultLimit, c.Limit())
	}
	if c.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", c.Offset())
	}
	if !c.ByRelevance() {
		t.Error("default criteria must be by relevance")
	}
}

func TestNew_ClampsLimitAndOffset(t *testing.T) {
	c, err := New("", Facets{}, Sort{}, MaxLimit+50, -3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Limit() != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, c.Limit())
	}
	if c.Offset() != 0 {
		t.Errorf("expected offset clamped to 0, got %d", c.Offset())
	}
}

func TestNew_InvalidSortField(t *testing.T) {
	_, err := New("", Facets{}, Sort{Field: "rating"}, 0, 0)
	if !errors.Is(err, domain.ErrInvalidCriteria) {
		t.Fatalf("expected ErrInvalidCriteria, got %v", err)
	}
}

func TestNew_TermTooLong(t *testing.T) {
	_, err := New(strings.Repeat("a", MaxTermLength+1), Facets{}, Sort{}, 0, 0)
	if !errors.Is(err, domain.ErrInvalidCriteria) {
		t.Fatalf("expected ErrInvalidCriteria, got %v", err)
	}
}

func TestNew_ExplicitSort(t *testing.T) {
	c, err := New("zaku", Facets{}, Sort{Field: SortPrice, Desc: true}, 10, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ByRelevance() {
		t.Error("price sort is not relevance")
	}
	if !c.Sort().Desc {
		t.Error("expected descending sort")
	}
	if c.Term() != "zaku" || c.Limit() != 10 || c.Offset() != 20 {
		t.Errorf("criteria fields lost: %q %d %d", c.Term(), c.Limit(), c.Offset())
	}
}

func TestSortField_IsValid(t *testing.T) {
	for _, f := range []SortField{SortRelevance, SortReleaseDate, SortPrice, SortName} {
		if !f.IsValid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if SortField("rating").IsValid() {
		t.Error("unknown field should be invalid")
	}
}

func TestFacets_IsEmpty(t *testing.T) {
	if !(Facets{}).IsEmpty() {
		t.Error("zero facets should be empty")
	}
	if (Facets{SeriesIDs: []string{"s1"}}).IsEmpty() {
		t.Error("facets with a selection should not be empty")
	}
}

func TestFacets_Merge(t *testing.T) {
	a := Facets{GradeIDs: []string{"g1"}, SeriesIDs: []string{"s1"}}
	b := Facets{GradeIDs: []string{"g2"}, MobileSuitIDs: []string{"m1"}}

	merged := a.Merge(b)

	if len(merged.GradeIDs) != 2 || merged.GradeIDs[0] != "g1" || merged.GradeIDs[1] != "g2" {
		t.Errorf("grade merge wrong: %v", merged.GradeIDs)
	}
	if len(merged.SeriesIDs) != 1 || len(merged.MobileSuitIDs) != 1 {
		t.Errorf("one-sided facets lost: %+v", merged)
	}
	if len(a.GradeIDs) != 1 {
		t.Error("merge must not modify the receiver")
	}
}

func TestWithFacets(t *testing.T) {
	c, err := New("zaku", Facets{}, Sort{}, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c2 := c.WithFacets(Facets{GradeIDs: []string{"g1"}})

	if len(c2.Facets().GradeIDs) != 1 {
		t.Error("facets not replaced")
	}
	if len(c.Facets().GradeIDs) != 0 {
		t.Error("original criteria modified")
	}
	if c2.Term() != "zaku" || c2.Limit() != 10 {
		t.Error("other fields lost")
	}
}
