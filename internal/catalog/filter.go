package catalog

import "coolbreeze/internal/domain"

// PriceRange is a closed interval over Product.PriceNum.
type PriceRange struct {
	Min int64
	Max int64
}

// Contains reports whether v lies within the interval, bounds inclusive.
func (r PriceRange) Contains(v int64) bool {
	return v >= r.Min && v <= r.Max
}

// Filter returns the subsequence of products whose price falls within the
// range and, when selected is non-empty, that carry at least one selected
// feature tag. Dimensions combine conjunctively; features match on any
// overlap. Original order is preserved.
func Filter(products []domain.Product, priceRange PriceRange, selected []string) []domain.Product {
	var want map[string]struct{}
	if len(selected) > 0 {
		want = make(map[string]struct{}, len(selected))
		for _, f := range selected {
			want[f] = struct{}{}
		}
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !priceRange.Contains(p.PriceNum) {
			continue
		}
		if want != nil && !hasAny(p.Features, want) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasAny(features []string, want map[string]struct{}) bool {
	for _, f := range features {
		if _, ok := want[f]; ok {
			return true
		}
	}
	return false
}
