package repositories

import (
	"fmt"

	"heshafood/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// Create inserts the order and its items in a single transaction. The
// auto-increment primary key assigned on insert is the order identifier.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// GORM inserts the Items association together with the order row;
		// the surrounding transaction guarantees all-or-nothing.
		return tx.Create(order).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByUserID returns all orders of a user, oldest first (ascending ID),
// each with its items in the sequence they were submitted. An unknown
// user simply yields an empty slice.
func (r *GORMOrderRepository) GetByUserID(userID string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for user %s: %w", userID, err)
	}
	return orders, nil
}
