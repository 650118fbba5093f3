package services_test

import (
	"fmt"
	"testing"

	"heshafood/internal/models"
	"heshafood/internal/repositories"
	"heshafood/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of repositories.ProductRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetAll() ([]models.Product, error) {
	args := m.Called()
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(id string) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockCatalogRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockCatalogRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo)

	expected := []models.Product{
		{ID: "p1", Name: "Idli & Dosa Batter", Price: 120.00, Available: true},
		{ID: "p2", Name: "Crispy Golden Dosa", Price: 150.00, Available: true},
	}

	mockRepo.On("GetAll").Return(expected, nil).Once()

	products, err := service.GetAllProducts()

	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expected, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo)

	expected := &models.Product{ID: "p1", Name: "Idli & Dosa Batter", Price: 120.00, Available: true}

	mockRepo.On("GetByID", "p1").Return(expected, nil).Once()
	product, err := service.GetProductByID("p1")
	assert.NoError(t, err)
	assert.Equal(t, expected, product)

	// Missing products surface the typed catalog error.
	mockRepo.On("GetByID", "p99").Return(nil, fmt.Errorf("product with ID p99: %w", repositories.ErrNotFound)).Once()
	product, err = service.GetProductByID("p99")
	assert.ErrorIs(t, err, services.ErrProductNotFound)
	assert.Nil(t, product)

	mockRepo.AssertExpectations(t)
}

func TestProductService_SetProductAvailability(t *testing.T) {
	mockRepo := new(MockCatalogRepository)
	service := services.NewProductService(mockRepo)

	product := &models.Product{ID: "p1", Name: "Lacy Appam", Price: 80.00, Available: true}

	mockRepo.On("GetByID", "p1").Return(product, nil).Once()
	mockRepo.On("Update", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == "p1" && !p.Available
	})).Return(nil).Once()

	err := service.SetProductAvailability("p1", false)
	assert.NoError(t, err)

	mockRepo.On("GetByID", "p99").Return(nil, fmt.Errorf("product with ID p99: %w", repositories.ErrNotFound)).Once()
	err = service.SetProductAvailability("p99", true)
	assert.ErrorIs(t, err, services.ErrProductNotFound)

	mockRepo.AssertExpectations(t)
}
