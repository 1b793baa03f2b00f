package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `json:"name" validate:"required,min=2"`
}
