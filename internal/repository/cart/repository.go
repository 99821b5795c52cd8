package cart

import (
	"context"

	"coolbreeze/internal/domain"
)

type Repository interface {
	// ListByUser returns the user's cart rows, newest first.
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	// Insert persists a new cart row. Returns domain.ErrAlreadyExists if the
	// user already has a row for the same product.
	Insert(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	// Delete removes the row with the given id belonging to the user.
	// Returns domain.ErrNotFound if no such row exists.
	Delete(ctx context.Context, userID, itemID string) error
}
