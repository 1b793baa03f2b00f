package services

import (
	"shoppingcart/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// The cart has no identity of its own; every read serves the same view.
const (
	CartID   = 1
	CartName = "My Cart"
)

// CartService assembles the cart view from the current cart lines.
type CartService struct {
	db *gorm.DB
}

func NewCartService(db *gorm.DB) *CartService {
	return &CartService{db: db}
}

// GetMyCart fetches every cart line with its product and category and sums
// price times quantity in exact decimal arithmetic. The grand total is
// derived on every read, never stored.
func (s *CartService) GetMyCart() (*models.Cart, error) {
	var items []models.CartItem
	if err := s.db.Preload("Product.Category").Find(&items).Error; err != nil {
		return nil, err
	}

	grandTotal := decimal.Zero
	for _, item := range items {
		grandTotal = grandTotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &models.Cart{
		ID:         CartID,
		Name:       CartName,
		Items:      items,
		GrandTotal: grandTotal,
	}, nil
}
