package models

import "time"

type User struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Email       string  `gorm:"unique;not null" json:"email"`
	Name        string  `json:"name"`
	Password    string  `gorm:"not null" json:"-"`
	Address     Address `gorm:"embedded" json:"address"` // Embeds address fields directly
	WalletMoney float64 `json:"walletMoney"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Address model embedded in User. A freshly registered user carries the
// zero value until they set a real address.
type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

// HasSetNonDefaultAddress reports whether the user has replaced the default
// (empty) address with a real one. Checkout refuses to ship to the default.
func (u *User) HasSetNonDefaultAddress() bool {
	return u.Address != (Address{})
}
