package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/utils/testdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newUser(t *testing.T, db *gorm.DB, n int, role models.UserRole) *models.User {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("user%d@example.com", n),
		PasswordHash: "hash",
		FullName:     fmt.Sprintf("User %d", n),
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))
	return user
}

func newCategory(t *testing.T, db *gorm.DB, name string, parentID *uint) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, ParentID: parentID, IsActive: true}
	require.NoError(t, NewCategoryRepository(db).Create(context.Background(), category))
	return category
}

func newProduct(t *testing.T, db *gorm.DB, sellerID, categoryID uint, price string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		SellerID:         sellerID,
		CategoryID:       categoryID,
		Name:             "Product " + price,
		Price:            dec(price),
		StockQuantity:    stock,
		MinOrderQuantity: 1,
		WeightKg:         dec("1.5"),
		IsActive:         true,
	}
	require.NoError(t, NewProductRepository(db).Create(context.Background(), product))
	return product
}

func newAddress(t *testing.T, db *gorm.DB, userID uint, label string, isDefault bool) *models.Address {
	t.Helper()
	address := &models.Address{
		UserID:      userID,
		Label:       label,
		FullAddress: "Jl. Merdeka 1",
		City:        "Bandung",
		State:       "Jawa Barat",
		PostalCode:  "40111",
		IsDefault:   isDefault,
	}
	require.NoError(t, NewGormAddressRepository(db, testdb.Logger()).CreateAddress(context.Background(), address))
	return address
}

func newOrder(t *testing.T, db *gorm.DB, userID, addressID uint, number string, items ...models.OrderItem) *models.Order {
	t.Helper()
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.TotalPrice)
	}
	order := &models.Order{
		UserID:            userID,
		ShippingAddressID: addressID,
		OrderNumber:       number,
		Subtotal:          subtotal,
		TotalAmount:       subtotal,
		PaymentMethod:     "bank_transfer",
		OrderItems:        items,
	}
	require.NoError(t, NewOrderRepository(db).Create(context.Background(), nil, order))
	return order
}
