package models

import "time"

// OrderItem represents a single line within an order. UnitPrice is the
// product price captured when the order was placed, not a live reference
// to the catalog.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OrderID   uint    `json:"-" gorm:"index"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order represents a customer order. Orders are immutable once created:
// the identifier is assigned by the store and is strictly increasing in
// creation order, which also fixes the history ordering.
type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    string      `json:"user_id" gorm:"type:varchar(36);index"`
	Items     []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Total     float64     `json:"total"`
	Status    string      `json:"status"`
	Address   string      `json:"address,omitempty" gorm:"type:text"`
	CreatedAt time.Time   `json:"created_at"`
}
