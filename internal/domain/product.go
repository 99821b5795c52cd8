package domain

// Product is a catalog entry. The catalog is static and assembled at
// startup, so products carry no database identity; ID is the slug derived
// from title and brand.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Brand       string   `json:"brand"`
	Description string   `json:"description,omitempty"`
	Price       string   `json:"price"`
	PriceNum    int64    `json:"priceNum"`
	Features    []string `json:"features"`
	Rating      float64  `json:"rating,omitempty"`
	Badge       string   `json:"badge,omitempty"`
}
