package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartItem is one line in the cart. A product appears at most once, so the
// product id doubles as the primary key.
type CartItem struct {
	ProductID uint            `gorm:"primaryKey" json:"product_id" validate:"required"`
	Product   Product         `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product" validate:"-"`
	CartID    *uint           `json:"cart_id,omitempty"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Quantity  int             `json:"quantity" validate:"min=0"`
	SubTotal  decimal.Decimal `gorm:"-" json:"sub_total"`
}

// Subtotal is price times quantity, derived and never stored.
func (ci *CartItem) Subtotal() decimal.Decimal {
	return ci.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}

func (ci *CartItem) AfterFind(tx *gorm.DB) error {
	ci.SubTotal = ci.Subtotal()
	return nil
}
