package models

import "time"

type Cart struct {
	CartID        uint       `gorm:"primaryKey" json:"cart_id"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"` // Enforces ONE cart per user
	Items         []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"cartItems"`
	PaymentOption string     `json:"paymentOption"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CartItem holds a snapshot of the product taken when it was added. Catalog
// edits after that point do not change what is already in a cart.
type CartItem struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	CartID           uint      `gorm:"index" json:"-"` // Faster queries
	ProductID        uint      `json:"product_id"`
	ProductName      string    `json:"product_name"`
	ProductCategory  string    `json:"product_category"`
	ProductCost      float64   `json:"product_cost"`
	ProductRating    int       `json:"product_rating"`
	ProductImageLink string    `json:"product_image"`
	Quantity         int       `json:"quantity"`
	AddedAt          time.Time `json:"added_at"`
}

// NewCartItem copies the product's catalog fields into a line item by value.
func NewCartItem(p *Product, quantity int) CartItem {
	return CartItem{
		ProductID:        p.ID,
		ProductName:      p.Name,
		ProductCategory:  p.Category,
		ProductCost:      p.Cost,
		ProductRating:    p.Rating,
		ProductImageLink: p.ImageLink,
		Quantity:         quantity,
		AddedAt:          time.Now(),
	}
}

// TotalCost sums the snapshotted cost of every line item times its quantity.
func (c *Cart) TotalCost() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.ProductCost * float64(item.Quantity)
	}
	return total
}
