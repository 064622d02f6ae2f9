package repository

import (
	"context"

	"github.com/saisantosh1998/qkartBackend/models"
)

// CartRepository is the cart store contract the cart service runs against.
// Lookups return (nil, nil) when no cart exists for the email; errors are
// reserved for infrastructure faults.
type CartRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Cart, error)
	Create(ctx context.Context, email, paymentOption string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) (*models.Cart, error)
}

// ProductRepository is the catalog lookup contract. FindByID returns
// (nil, nil) when the product does not exist.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Product, error)
}

// UserRepository persists user mutations made by the cart service (wallet
// debit at checkout).
type UserRepository interface {
	Save(ctx context.Context, user *models.User) (*models.User, error)
}
