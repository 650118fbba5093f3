package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"heshafood/internal/models"
	"heshafood/internal/repositories"
)

// OrderEventPublisher publishes order lifecycle events to the message
// broker. Implemented by pkg/rabbitmq; nil disables publishing.
type OrderEventPublisher interface {
	PublishOrderCreated(event map[string]interface{}) error
}

// OrderLine is a single (product, quantity) pair of an order request.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// OrderService is the order ledger: it validates order requests against
// the user store and product catalog, persists orders atomically and
// serves per-user order history.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	publisher   OrderEventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// CreateOrder validates and persists a new order for userID.
//
// Each line's unit price is a snapshot of the product's price at this
// moment; later catalog changes never alter a stored order. The order
// and its items are written in one transaction, so a failed request
// leaves no partial rows behind. Nothing is retried here: validation
// failures are client errors, and storage failures are reported as
// ErrStorageUnavailable for the boundary to handle.
func (s *OrderService) CreateOrder(userID string, lines []OrderLine, address string) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidRequest)
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	var total float64
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, err := s.productRepo.GetByID(line.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
			}
			return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
		}
		if !product.Available {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, line.ProductID)
		}
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity for product %s must be at least 1", ErrInvalidRequest, line.ProductID)
		}

		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: product.Price, // snapshot, never re-read from the catalog
		})
		total += product.Price * float64(line.Quantity)
	}

	order := &models.Order{
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    "pending",
		Address:   address,
		CreatedAt: time.Now(),
	}

	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	s.publishOrderCreated(order)

	return order, nil
}

// GetOrdersForUser returns the user's orders oldest first (ascending
// identifier, which is creation order). History for an unknown user is
// vacuously empty rather than an error; the read path has no side
// effects and never fails on client input.
func (s *OrderService) GetOrdersForUser(userID string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return orders, nil
}

// publishOrderCreated emits an order.created event. Publishing is
// best-effort: the order is already committed, so a broker failure is
// logged and the request still succeeds.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Event publisher is not configured. Skipping order.created event.")
		return
	}

	event := map[string]interface{}{
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
		"total":    order.Total,
	}
	if err := s.publisher.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: Failed to publish order.created event for order %d: %v", order.ID, err)
	}
}
