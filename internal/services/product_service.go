package services

import (
	"errors"
	"fmt"

	"heshafood/internal/models"
	"heshafood/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return product, nil
}

// CreateProduct adds a product to the catalog. Used by the seeding flow;
// the order path never writes products.
func (s *ProductService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// SetProductAvailability toggles whether a product can be ordered.
func (s *ProductService) SetProductAvailability(id string, available bool) error {
	product, err := s.GetProductByID(id)
	if err != nil {
		return err
	}
	product.Available = available
	return s.repo.Update(product)
}
