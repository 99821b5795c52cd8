package catalog

import (
	"fmt"
	"sort"
	"strings"

	"coolbreeze/internal/domain"
)

// Catalog is the static, in-memory product list. It is immutable after New;
// accessors hand out copies so callers cannot mutate shared state.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
	features []string
}

// New derives product IDs from title+brand and indexes the list. Returns an
// error if two products collapse to the same slug.
func New(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		p.ID = Slug(p.Title, p.Brand)
		if p.ID == "" {
			return nil, fmt.Errorf("catalog: empty slug for product %d (%q, %q)", i, p.Title, p.Brand)
		}
		if prev, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("catalog: duplicate product id %q (positions %d and %d)", p.ID, prev, i)
		}
		c.byID[p.ID] = i
		c.products[i] = p
	}
	c.features = featureUnion(c.products)
	return c, nil
}

// Products returns the full catalog in its original order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Get returns the product with the given id or domain.ErrNotFound.
func (c *Catalog) Get(id string) (*domain.Product, error) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p := c.products[idx]
	return &p, nil
}

// FeatureTags returns the de-duplicated, sorted union of every product's
// feature tags. This is the set of selectable filter options.
func (c *Catalog) FeatureTags() []string {
	out := make([]string, len(c.features))
	copy(out, c.features)
	return out
}

// Slug derives the stable product identifier from title and brand:
// lowercased, with non-alphanumeric runs collapsed to single hyphens.
func Slug(title, brand string) string {
	s := strings.ToLower(strings.TrimSpace(title) + " " + strings.TrimSpace(brand))
	var b strings.Builder
	hyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func featureUnion(products []domain.Product) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range products {
		for _, f := range p.Features {
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}
