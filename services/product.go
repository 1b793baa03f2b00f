package services

import (
	"errors"

	"shoppingcart/models"

	"gorm.io/gorm"
)

// ProductService wraps the storage session for product rows. Reads carry the
// related category along.
type ProductService struct {
	db *gorm.DB
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Preload("Category").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductService) Get(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) Create(product *models.Product) error {
	// Only the row itself; the category relation is never written through a
	// product payload.
	if err := s.db.Omit("Category").Create(product).Error; err != nil {
		return err
	}
	return s.db.Preload("Category").First(product, product.ID).Error
}

// Update copies name and price onto the stored row. Identity and the category
// relation are left untouched.
func (s *ProductService) Update(product *models.Product) (*models.Product, error) {
	var existing models.Product
	if err := s.db.Preload("Category").First(&existing, product.ID).Error; err != nil {
		return nil, err
	}
	existing.Name = product.Name
	existing.Price = product.Price
	if err := s.db.Omit("Category").Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (s *ProductService) Delete(id uint) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.db.Delete(&product).Error
}
