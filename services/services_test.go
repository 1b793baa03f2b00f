package services

import (
	"path/filepath"
	"testing"

	"shoppingcart/db"
	"shoppingcart/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.Open(filepath.Join(t.TempDir(), "shoppingcart_test.db"))
	require.NoError(t, err)
	return gdb
}

func seedCategories(t *testing.T, gdb *gorm.DB, names ...string) []models.Category {
	t.Helper()
	categories := make([]models.Category, 0, len(names))
	for _, name := range names {
		category := models.Category{Name: name}
		require.NoError(t, gdb.Create(&category).Error)
		categories = append(categories, category)
	}
	return categories
}

func seedProduct(t *testing.T, gdb *gorm.DB, name string, price int64, categoryID uint) models.Product {
	t.Helper()
	product := models.Product{
		Name:       name,
		Price:      decimal.NewFromInt(price),
		CategoryID: categoryID,
	}
	require.NoError(t, gdb.Omit("Category").Create(&product).Error)
	return product
}

func seedCartItem(t *testing.T, gdb *gorm.DB, productID uint, price int64, quantity int) models.CartItem {
	t.Helper()
	item := models.CartItem{
		ProductID: productID,
		Price:     decimal.NewFromInt(price),
		Quantity:  quantity,
	}
	require.NoError(t, gdb.Omit("Product").Create(&item).Error)
	return item
}
