package repository

import (
	"context"
	"errors"

	"github.com/saisantosh1998/qkartBackend/models"
	"gorm.io/gorm"
)

type GormCartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) FindByEmail(ctx context.Context, email string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			// Insertion order
			return db.Order("cart_items.added_at ASC, cart_items.id ASC")
		}).
		Where("email = ?", email).
		First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// Create inserts an empty cart for the email. Two concurrent first-adds can
// race here; the unique index on email decides the winner and the loser
// re-fetches the winner's cart. Requires gorm.Config{TranslateError: true}.
func (r *GormCartRepository) Create(ctx context.Context, email, paymentOption string) (*models.Cart, error) {
	cart := &models.Cart{
		Email:         email,
		Items:         []models.CartItem{},
		PaymentOption: paymentOption,
	}
	if err := r.db.WithContext(ctx).Create(cart).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByEmail(ctx, email)
		}
		return nil, err
	}
	return cart, nil
}

// Save persists the cart row and replaces its item rows with the cart's
// current item list, in one transaction.
func (r *GormCartRepository) Save(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = cart.CartID
		}
		return tx.Save(cart).Error
	})
	if err != nil {
		return nil, err
	}
	return cart, nil
}
