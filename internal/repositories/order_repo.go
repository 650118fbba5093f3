package repositories

import "heshafood/internal/models"

// OrderRepository defines the interface for order data access.
//
// Create must persist the order and all of its items as one atomic unit:
// after it returns, either every row exists or none do. The store assigns
// the order ID, which is strictly increasing in creation order.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByUserID(userID string) ([]models.Order, error)
}
