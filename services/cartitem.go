package services

import (
	"errors"

	"shoppingcart/models"

	"gorm.io/gorm"
)

// CartItemService wraps the storage session for cart lines. A cart item is
// keyed by its product id, so every lookup goes through that key.
type CartItemService struct {
	db *gorm.DB
}

func NewCartItemService(db *gorm.DB) *CartItemService {
	return &CartItemService{db: db}
}

func (s *CartItemService) GetAll() ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Preload("Product.Category").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CartItemService) Get(productID uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.Preload("Product.Category").First(&item, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create adds a line to the cart. Adding a product that is already in the
// cart violates the primary key and surfaces as a storage error.
func (s *CartItemService) Create(item *models.CartItem) error {
	if err := s.db.Omit("Product").Create(item).Error; err != nil {
		return err
	}
	return s.db.Preload("Product.Category").First(item, item.ProductID).Error
}

// Update changes the quantity of an existing line. Price and product identity
// are never rewritten.
func (s *CartItemService) Update(item *models.CartItem) (*models.CartItem, error) {
	var existing models.CartItem
	if err := s.db.Preload("Product.Category").First(&existing, item.ProductID).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&existing).Update("quantity", item.Quantity).Error; err != nil {
		return nil, err
	}
	existing.SubTotal = existing.Subtotal()
	return &existing, nil
}

func (s *CartItemService) Delete(productID uint) error {
	var item models.CartItem
	if err := s.db.First(&item, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.db.Delete(&item).Error
}
