package repositories_test

import (
	"fmt"
	"testing"

	"heshafood/internal/models"
	"heshafood/internal/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens a private in-memory SQLite database and migrates the
// schema, mirroring what main does at startup.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{})
	assert.NoError(t, err)

	return db
}

func TestGORMOrderRepository_CreatePersistsOrderWithItems(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	order := &models.Order{
		UserID: "u1",
		Items: []models.OrderItem{
			{ProductID: "p1", Quantity: 2, UnitPrice: 5.00},
			{ProductID: "p2", Quantity: 1, UnitPrice: 3.50},
		},
		Total:  13.50,
		Status: "pending",
	}

	assert.NoError(t, repo.Create(order))
	assert.NotZero(t, order.ID)

	fetched, err := repo.GetByUserID("u1")
	assert.NoError(t, err)
	assert.Len(t, fetched, 1)
	assert.Equal(t, order.ID, fetched[0].ID)
	assert.Equal(t, 13.50, fetched[0].Total)
	assert.Len(t, fetched[0].Items, 2)
	assert.Equal(t, "p1", fetched[0].Items[0].ProductID)
	assert.Equal(t, "p2", fetched[0].Items[1].ProductID)
}

func TestGORMOrderRepository_IdentifiersStrictlyIncrease(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	var lastID uint
	for i := 0; i < 5; i++ {
		order := &models.Order{
			UserID: "u1",
			Items:  []models.OrderItem{{ProductID: "p1", Quantity: 1, UnitPrice: 5.00}},
			Total:  5.00,
			Status: "pending",
		}
		assert.NoError(t, repo.Create(order))
		assert.Greater(t, order.ID, lastID)
		lastID = order.ID
	}
}

func TestGORMOrderRepository_CreateRollsBackOnItemFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	// Two items forced onto the same primary key make the item insert
	// fail after the order row has been written inside the transaction.
	order := &models.Order{
		UserID: "u1",
		Items: []models.OrderItem{
			{ID: 7, ProductID: "p1", Quantity: 1, UnitPrice: 5.00},
			{ID: 7, ProductID: "p2", Quantity: 1, UnitPrice: 3.50},
		},
		Total:  8.50,
		Status: "pending",
	}

	assert.Error(t, repo.Create(order))

	// No partial rows survive the rollback.
	var orderCount, itemCount int64
	assert.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestGORMOrderRepository_GetByUserIDAscendingAndScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	for i := 1; i <= 3; i++ {
		assert.NoError(t, repo.Create(&models.Order{
			UserID: "u1",
			Items:  []models.OrderItem{{ProductID: "p1", Quantity: i, UnitPrice: 5.00}},
			Total:  5.00 * float64(i),
			Status: "pending",
		}))
	}
	assert.NoError(t, repo.Create(&models.Order{
		UserID: "u2",
		Items:  []models.OrderItem{{ProductID: "p2", Quantity: 1, UnitPrice: 3.50}},
		Total:  3.50,
		Status: "pending",
	}))

	orders, err := repo.GetByUserID("u1")
	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	for i := 1; i < len(orders); i++ {
		assert.Greater(t, orders[i].ID, orders[i-1].ID)
	}
	for _, o := range orders {
		assert.Equal(t, "u1", o.UserID)
	}

	// Unknown user gets an empty slice, not an error.
	none, err := repo.GetByUserID("nobody")
	assert.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestGORMUserRepository_NotFoundSentinel(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	_, err := repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	_, err = repo.GetByEmail("ghost@example.com")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = repo.UpdateAddress("missing", "[]")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestGORMUserRepository_CreateAndUpdateAddress(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	user := &models.User{Name: "Asha", Email: "asha@example.com", Password: "hashed"}
	assert.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID)

	assert.NoError(t, repo.UpdateAddress(user.ID, `[{"city":"Chennai"}]`))

	fetched, err := repo.GetByID(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, `[{"city":"Chennai"}]`, fetched.Address)
}

func TestGORMUserRepository_DuplicateEmailSentinel(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMUserRepository(db)

	assert.NoError(t, repo.Create(&models.User{Name: "Asha", Email: "asha@example.com", Password: "hashed"}))

	err := repo.Create(&models.User{Name: "Imposter", Email: "asha@example.com", Password: "hashed"})
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
}

func TestGORMProductRepository_CRUDAndNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewGORMProductRepository(db)

	product := &models.Product{Name: "Lacy Appam", Price: 80.00, Available: true}
	assert.NoError(t, repo.Create(product))
	assert.NotEmpty(t, product.ID)

	all, err := repo.GetAll()
	assert.NoError(t, err)
	assert.Len(t, all, 1)

	fetched, err := repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.Equal(t, 80.00, fetched.Price)

	fetched.Available = false
	assert.NoError(t, repo.Update(fetched))
	fetched, err = repo.GetByID(product.ID)
	assert.NoError(t, err)
	assert.False(t, fetched.Available)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	assert.NoError(t, repo.Delete(product.ID))
	_, err = repo.GetByID(product.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	err = repo.Delete("missing")
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
