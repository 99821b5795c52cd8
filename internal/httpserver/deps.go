package httpserver

import (
	"context"

	"coolbreeze/internal/domain"
	authsvc "coolbreeze/internal/service/auth"
)

// Deps carries the services the router depends on. Interfaces are consumer
// side so tests can swap in stubs.
type Deps struct {
	Catalog    CatalogSource
	CartSvc    CartService
	AuthSvc    AuthService
	EnquirySvc EnquiryLinker
}

type CatalogSource interface {
	Products() []domain.Product
	Get(id string) (*domain.Product, error)
	FeatureTags() []string
}

type CartService interface {
	List(ctx context.Context, userID string) ([]domain.CartItem, error)
	Add(ctx context.Context, userID, productID string) (*domain.CartItem, error)
	Remove(ctx context.Context, userID, itemID string) error
}

type AuthService interface {
	Signup(ctx context.Context, in authsvc.SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Logout(ctx context.Context, token string) error
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	AccessTTLSeconds() int
}

type EnquiryLinker interface {
	Link(message string) string
}
