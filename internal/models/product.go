package models

import "gorm.io/gorm"

// Product represents a purchasable item in the catalog.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Category    string  `json:"category" validate:"omitempty,max=100"`
	ImageURL    string  `json:"img" validate:"omitempty,max=255"`
	Price       float64 `json:"price" validate:"gte=0"`
	Available   bool    `json:"available"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
