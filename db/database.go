package db

import (
	"log"
	"os"
	"path/filepath"

	"shoppingcart/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open connects to the sqlite database at dbPath, creating the file and its
// directory if needed, and migrates the schema. The returned handle is the
// only way to reach storage; it is passed into each service rather than held
// as a package global.
func Open(dbPath string) (*gorm.DB, error) {
	// Ensure the directory exists (create if it doesn't)
	dir := filepath.Dir(dbPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	// Check if the database file exists
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		log.Println("Database file does not exist, creating:", dbPath)
		file, err := os.Create(dbPath)
		if err != nil {
			return nil, err
		}
		file.Close()
	}

	gdb, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Println("Database connected successfully at", dbPath)

	// Auto migrate the schema
	if err := gdb.AutoMigrate(
		&models.Category{}, &models.Product{}, &models.Cart{}, &models.CartItem{},
	); err != nil {
		return nil, err
	}

	return gdb, nil
}
