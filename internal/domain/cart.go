package domain

import "time"

// CartItem is a persisted cart row. Title, brand, price and features are a
// snapshot of the product at the time of add; later catalog changes do not
// touch existing rows.
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	ProductID string    `json:"productId"`
	Title     string    `json:"title"`
	Brand     string    `json:"brand"`
	Price     string    `json:"price"`
	Features  []string  `json:"features"`
	CreatedAt time.Time `json:"createdAt"`
}
