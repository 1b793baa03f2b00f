package models

import "github.com/shopspring/decimal"

// Product belongs to one Category via CategoryID.
type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `json:"name" validate:"required"`
	Price      decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	CategoryID uint            `json:"category_id" validate:"required"`
	Category   Category        `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category" validate:"-"`
}
