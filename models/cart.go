package models

import "github.com/shopspring/decimal"

// Cart is the aggregate view over all cart items. The carts table is kept in
// the schema, but the served cart is always rebuilt from the cart_items rows
// and the grand total is recomputed on every read.
type Cart struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `json:"name"`
	Items      []CartItem      `gorm:"foreignKey:CartID" json:"items"`
	GrandTotal decimal.Decimal `gorm:"type:decimal(10,2)" json:"grand_total"`
}
