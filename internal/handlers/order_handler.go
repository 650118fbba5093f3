package handlers

import (
	"encoding/json"
	"errors"
	"log"

	"heshafood/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/orders", h.HandleCreateOrder)
	router.Get("/orders/:user_id", h.HandleGetOrdersForUser)
}

// OrderItemRequest is one line of an order request.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderRequest represents the request body for placing an order.
type CreateOrderRequest struct {
	UserID  string             `json:"user_id" validate:"required"`
	Items   []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Address *AddressRequest    `json:"address" validate:"omitempty"`
}

// HandleCreateOrder places a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationMessages(err),
		})
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, services.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	var address string
	if req.Address != nil {
		addressJSON, err := json.Marshal(req.Address)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid address",
				"error":   err.Error(),
			})
		}
		address = string(addressJSON)
	}

	order, err := h.service.CreateOrder(req.UserID, lines, address)
	if err != nil {
		log.Printf("Error creating order for user %s: %v", req.UserID, err)
		return c.Status(statusForOrderError(err)).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrdersForUser returns the order history of a user, oldest
// first. A user with no orders gets an empty array, not an error.
func (h *OrderHandler) HandleGetOrdersForUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")

	orders, err := h.service.GetOrdersForUser(userID)
	if err != nil {
		log.Printf("Error getting orders for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve orders",
			"error":   err.Error(),
		})
	}

	return c.JSON(orders)
}

// statusForOrderError maps ledger errors onto HTTP status codes. Client
// input errors become 4xx; storage failures surface as 500.
func statusForOrderError(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidRequest),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrProductUnavailable):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
