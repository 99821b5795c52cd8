package cart

import (
	"context"
	"errors"
	"strings"

	"coolbreeze/internal/domain"
	cartrepo "coolbreeze/internal/repository/cart"
)

// Service mediates all reads and writes of the user's cart rows.
type Service struct {
	repo     cartRepo
	products productSource
}

type cartRepo interface {
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	Insert(ctx context.Context, item domain.CartItem) (*domain.CartItem, error)
	Delete(ctx context.Context, userID, itemID string) error
}

type productSource interface {
	Get(id string) (*domain.Product, error)
}

func New(repo cartrepo.Repository, products productSource) *Service {
	return &Service{repo: repo, products: products}
}

// List returns the user's cart, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Add snapshots the product into a new cart row for the user. The storage
// layer's composite unique key guarantees at most one row per
// (user, product); a duplicate add surfaces domain.ErrAlreadyExists and
// leaves the existing row untouched.
func (s *Service) Add(ctx context.Context, userID, productID string) (*domain.CartItem, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, errors.New("productId required")
	}
	if s.products == nil {
		return nil, errors.New("catalog unavailable")
	}
	product, err := s.products.Get(productID)
	if err != nil {
		return nil, err
	}

	features := make([]string, len(product.Features))
	copy(features, product.Features)

	return s.repo.Insert(ctx, domain.CartItem{
		UserID:    userID,
		ProductID: product.ID,
		Title:     product.Title,
		Brand:     product.Brand,
		Price:     product.Price,
		Features:  features,
	})
}

// Remove deletes the row by id, scoped to the owning user. A row that is
// already gone surfaces domain.ErrNotFound, which callers treat as benign.
func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return errors.New("itemId required")
	}
	return s.repo.Delete(ctx, userID, itemID)
}
