package services

import (
	"errors"

	"shoppingcart/models"

	"gorm.io/gorm"
)

// CategoryService wraps the storage session for category rows.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Get returns the category with the given id, or nil if no row matches.
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) Create(category *models.Category) error {
	return s.db.Create(category).Error
}

// Update copies the mutable fields onto the stored row. Callers check
// existence first; a missing row surfaces as the lookup error.
func (s *CategoryService) Update(category *models.Category) (*models.Category, error) {
	var existing models.Category
	if err := s.db.First(&existing, category.ID).Error; err != nil {
		return nil, err
	}
	existing.Name = category.Name
	if err := s.db.Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

// Delete removes the category with the given id. Deleting an absent row is a
// no-op; the handler is responsible for reporting it as not found.
func (s *CategoryService) Delete(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.db.Delete(&category).Error
}
