package user

import (
	"context"

	"coolbreeze/internal/domain"
)

type Repository interface {
	// Create persists a new user. Returns domain.ErrAlreadyExists if the
	// email is taken.
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
