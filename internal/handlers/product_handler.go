package handlers

import (
	"errors"
	"fmt"
	"log"

	"heshafood/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service: service,
	}
}

// RegisterRoutes registers the public product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleGetProducts)
	router.Get("/products/:id", h.HandleGetProductByID)
}

// RegisterManagementRoutes registers catalog management routes that
// require an authenticated user.
func (h *ProductHandler) RegisterManagementRoutes(router fiber.Router) {
	router.Patch("/products/:id/availability", h.HandleSetAvailability)
}

// HandleGetProducts lists the catalog.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// AvailabilityRequest represents the request body for toggling whether a
// product can be ordered.
type AvailabilityRequest struct {
	Available *bool `json:"available"`
}

// HandleSetAvailability enables or disables a product for ordering.
func (h *ProductHandler) HandleSetAvailability(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req AvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing availability request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.Available == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Available is required for an availability update.",
		})
	}

	if err := h.service.SetProductAvailability(productID, *req.Available); err != nil {
		log.Printf("Error updating availability for product %s: %v", productID, err)
		if errors.Is(err, services.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product availability",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Product %s availability updated", productID),
	})
}
