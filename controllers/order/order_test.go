package orderControllers

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aboh505/BestLife/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		ID:           id,
		LastName:     "Doe",
		FirstName:    "Jane",
		Email:        id + "@example.com",
		PasswordHash: "x",
		Role:         role,
		Active:       true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		Brand:       "Acme",
		Category:    models.CategoryElectronics,
		Price:       price,
		Description: "test product",
		Stock:       stock,
		Active:      true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func stockOf(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", id).Error)
	return product.Stock
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "u1", models.RoleClient)

	_, err := PlaceOrder(db, "u1", PlaceOrderRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderRejectsNonPositiveQuantity(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "u1", models.RoleClient)
	p := seedProduct(t, db, "Phone X", 300, 5)

	for _, qty := range []int{0, -3} {
		_, err := PlaceOrder(db, "u1", PlaceOrderRequest{
			Items: []LineItemRequest{{ProductID: p.ID, Quantity: qty}},
			Total: 0,
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
	assert.Equal(t, 5, stockOf(t, db, p.ID))
}

func TestPlaceOrderDecrementsStock(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "u1", models.RoleClient)
	p := seedProduct(t, db, "Phone X", 300, 5)

	order, err := PlaceOrder(db, "u1", PlaceOrderRequest{
		Items: []LineItemRequest{{ProductID: p.ID, Quantity: 3}},
		Total: 900,
		Address: models.Address{
			Street: "1 Main St", City: "Douala", PostalCode: "0000", Phone: "123",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, stockOf(t, db, p.ID))
	assert.Equal(t, models.OrderStatusPreparing, order.Status)
	assert.Equal(t, 900.0, order.Total)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Phone X", order.Items[0].Name)
	assert.Equal(t, 300.0, order.Items[0].Price)

	// A second order for more than the remaining stock fails and leaves
	// the remaining stock untouched.
	_, err = PlaceOrder(db, "u1", PlaceOrderRequest{
		Items: []LineItemRequest{{ProductID: p.ID, Quantity: 3}},
		Total: 900,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Equal(t, 2, stockOf(t, db, p.ID))
}

func TestPlaceOrderRollsBackOnMissingProduct(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "u1", models.RoleClient)
	p := seedProduct(t, db, "Phone X", 300, 5)

	_, err := PlaceOrder(db, "u1", PlaceOrderRequest{
		Items: []LineItemRequest{
			{ProductID: p.ID, Quantity: 2},
			{ProductID: 9999, Quantity: 1},
		},
		Total: 600,
	})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// The first line's decrement must have been rolled back.
	assert.Equal(t, 5, stockOf(t, db, p.ID))

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrderRollsBackOnLaterInsufficientStock(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "u1", models.RoleClient)
	p1 := seedProduct(t, db, "Phone X", 300, 5)
	p2 := seedProduct(t, db, "Laptop Y", 1000, 1)

	_, err := PlaceOrder(db, "u1", PlaceOrderRequest{
		Items: []LineItemRequest{
			{ProductID: p1.ID, Quantity: 4},
			{ProductID: p2.ID, Quantity: 2},
		},
		Total: 3200,
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Laptop Y")

	assert.Equal(t, 5, stockOf(t, db, p1.ID))
	assert.Equal(t, 1, stockOf(t, db, p2.ID))
}

func TestPlaceOrderRejectsTotalMismatch(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "u1", models.RoleClient)
	p := seedProduct(t, db, "Phone X", 300, 5)

	_, err := PlaceOrder(db, "u1", PlaceOrderRequest{
		Items: []LineItemRequest{{ProductID: p.ID, Quantity: 2}},
		Total: 1, // server computes 600
	})
	assert.ErrorIs(t, err, ErrTotalMismatch)

	// Rejection happens inside the transaction, nothing was decremented.
	assert.Equal(t, 5, stockOf(t, db, p.ID))
}

func TestOrderSnapshotSurvivesCatalogEdits(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "u1", models.RoleClient)
	p := seedProduct(t, db, "Phone X", 300, 5)

	order, err := PlaceOrder(db, "u1", PlaceOrderRequest{
		Items: []LineItemRequest{{ProductID: p.ID, Quantity: 1}},
		Total: 300,
	})
	require.NoError(t, err)

	// Rename and reprice the product after the fact.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{"name": "Phone X Pro", "price": 999.0}).Error)

	var stored models.Order
	require.NoError(t, db.Preload("Items").First(&stored, "id = ?", order.ID).Error)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Phone X", stored.Items[0].Name)
	assert.Equal(t, 300.0, stored.Items[0].Price)
	assert.Equal(t, 300.0, stored.Total)
}

func TestStockNeverGoesNegative(t *testing.T) {
	db := openTestDB(t)
	seedUser(t, db, "u1", models.RoleClient)
	p := seedProduct(t, db, "Phone X", 300, 5)

	// Two orders each asking for more than half the stock: only one can
	// succeed under the conditional decrement.
	_, err1 := PlaceOrder(db, "u1", PlaceOrderRequest{
		Items: []LineItemRequest{{ProductID: p.ID, Quantity: 3}},
		Total: 900,
	})
	_, err2 := PlaceOrder(db, "u1", PlaceOrderRequest{
		Items: []LineItemRequest{{ProductID: p.ID, Quantity: 3}},
		Total: 900,
	})

	require.NoError(t, err1)
	assert.ErrorIs(t, err2, ErrInsufficientStock)
	assert.GreaterOrEqual(t, stockOf(t, db, p.ID), 0)
	assert.Equal(t, 2, stockOf(t, db, p.ID))
}
