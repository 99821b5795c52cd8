package catalog

import (
	"math"
	"testing"

	"coolbreeze/internal/domain"
)

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", PriceNum: 55000, Features: []string{"Portable", "Dual Mode"}},
		{ID: "p2", PriceNum: 65000, Features: []string{"Easy Install", "Compact"}},
		{ID: "p3", PriceNum: 85000, Features: []string{"Energy Efficient", "Smart Control"}},
		{ID: "p4", PriceNum: 125000, Features: []string{"Inverter Technology", "Low Noise"}},
		{ID: "p5", PriceNum: 175000, Features: []string{"High Capacity", "Remote Control"}},
		{ID: "p6", PriceNum: 450000, Features: []string{"Commercial Grade", "Zone Control"}},
	}
}

func fullRange() PriceRange {
	return PriceRange{Min: 0, Max: math.MaxInt64}
}

func ids(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterPriceRangeScenario(t *testing.T) {
	got := Filter(testProducts(), PriceRange{Min: 60000, Max: 200000}, nil)
	if !equalIDs(ids(got), "p2", "p3", "p4", "p5") {
		t.Fatalf("unexpected result: %v", ids(got))
	}
}

func TestFilterPreservesOriginalOrder(t *testing.T) {
	got := Filter(testProducts(), fullRange(), nil)
	if !equalIDs(ids(got), "p1", "p2", "p3", "p4", "p5", "p6") {
		t.Fatalf("expected full catalog in order, got %v", ids(got))
	}
}

func TestFilterPriceBoundsInclusive(t *testing.T) {
	got := Filter(testProducts(), PriceRange{Min: 55000, Max: 55000}, nil)
	if !equalIDs(ids(got), "p1") {
		t.Fatalf("expected exact bound match, got %v", ids(got))
	}
}

func TestFilterLoweringMaxRemovesAndRaisingRestores(t *testing.T) {
	contains := func(products []domain.Product, id string) bool {
		for _, p := range products {
			if p.ID == id {
				return true
			}
		}
		return false
	}

	below := Filter(testProducts(), PriceRange{Min: 0, Max: 124999}, nil)
	if contains(below, "p4") {
		t.Fatal("p4 should be excluded when max drops below its price")
	}
	restored := Filter(testProducts(), PriceRange{Min: 0, Max: 125000}, nil)
	if !contains(restored, "p4") {
		t.Fatal("p4 should return once max is raised back")
	}
}

func TestFilterEmptyFeatureSelectionIsIdentity(t *testing.T) {
	all := Filter(testProducts(), fullRange(), nil)
	alsoAll := Filter(testProducts(), fullRange(), []string{})
	if len(all) != len(testProducts()) || len(alsoAll) != len(testProducts()) {
		t.Fatalf("empty selection must not filter: %d %d", len(all), len(alsoAll))
	}
}

func TestFilterFeatureAnyOverlap(t *testing.T) {
	selected := []string{"Low Noise", "Portable"}
	got := Filter(testProducts(), fullRange(), selected)
	// p1 overlaps on Portable, p4 on Low Noise; both keep their other,
	// unselected features without being excluded for them.
	if !equalIDs(ids(got), "p1", "p4") {
		t.Fatalf("unexpected result: %v", ids(got))
	}
}

func TestFilterFeatureNoOverlapExcluded(t *testing.T) {
	got := Filter(testProducts(), fullRange(), []string{"Nonexistent Tag"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestFilterDimensionsAreConjunctive(t *testing.T) {
	// p4 matches the feature but not the price; p1 matches the price but
	// not the feature. Neither passes both dimensions.
	got := Filter(testProducts(), PriceRange{Min: 0, Max: 60000}, []string{"Low Noise"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestFilterEmptyResultIsValid(t *testing.T) {
	got := Filter(testProducts(), PriceRange{Min: 1, Max: 2}, nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("expected non-nil empty slice, got %#v", got)
	}
}
