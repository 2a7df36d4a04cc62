package services

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	_, err := m.users.Register(ctx, schemas.UserCreate{Email: "not-an-email", Password: "12345678", FullName: "Ann"})
	verr, ok := validation.AsError(err)
	require.True(t, ok)
	assert.True(t, verr.Has("email", "email_pattern"))

	user, err := m.users.Register(ctx, schemas.UserCreate{Email: "a@b.co", Password: "12345678", FullName: "Ann"})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, models.RoleBuyer, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "12345678", user.PasswordHash)

	_, err = m.users.Register(ctx, schemas.UserCreate{Email: "a@b.co", Password: "87654321", FullName: "Copy"})
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
}

func TestUserService_Authenticate(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	user := m.register(t, "ann@example.com")

	got, err := m.users.Authenticate(ctx, "ann@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = m.users.Authenticate(ctx, "ann@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = m.users.Authenticate(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, m.userRepo.SetActive(ctx, user.ID, false))
	_, err = m.users.Authenticate(ctx, "ann@example.com", "password123")
	assert.ErrorIs(t, err, ErrInactiveUser)
}

func TestUserService_UpdateProfileAndAddress(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	user := m.register(t, "ann@example.com")

	name := "Ann Lee"
	updated, err := m.users.UpdateProfile(ctx, user.ID, schemas.UserUpdate{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", updated.FullName)

	phone := "081234567890"
	updated, err = m.users.UpdateProfile(ctx, user.ID, schemas.UserUpdate{Phone: &phone})
	require.NoError(t, err)
	require.NotNil(t, updated.Phone)

	cleared := ""
	_, err = m.users.UpdateProfile(ctx, user.ID, schemas.UserUpdate{Phone: &cleared})
	require.NoError(t, err)
	stored, err := m.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Phone)
	assert.Equal(t, "Ann Lee", stored.FullName)

	_, err = m.users.UpdateProfile(ctx, 999, schemas.UserUpdate{FullName: &name})
	assert.ErrorIs(t, err, ErrUserNotFound)

	address := m.address(t, user.ID)
	assert.True(t, address.IsDefault)
	assert.Equal(t, models.DefaultCountry, address.Country)

	_, err = m.users.AddAddress(ctx, user.ID, schemas.AddressCreate{Label: "Office"})
	_, ok := validation.AsError(err)
	assert.True(t, ok)
}

func TestSellerService_Open(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	user := m.register(t, "shop@example.com")

	profile, err := m.sellers.Open(ctx, user.ID, schemas.SellerProfileCreate{StoreName: "Toko Kopi"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, profile.UserID)

	got, err := m.userRepo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeller, got.Role)
	require.NotNil(t, got.SellerProfile)

	_, err = m.sellers.Open(ctx, user.ID, schemas.SellerProfileCreate{StoreName: "Again"})
	assert.ErrorIs(t, err, repositories.ErrSellerProfileExists)
}

func TestSellerService_AddProduct(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()
	buyer := m.register(t, "buyer@example.com")
	seller := m.seller(t, "seller@example.com")
	category := m.category(t, "Coffee")

	in := schemas.ProductCreate{CategoryID: category.ID, Name: "Kopi", Price: dec("99.99"), WeightKg: dec("1")}
	_, err := m.sellers.AddProduct(ctx, buyer.ID, in)
	assert.ErrorIs(t, err, ErrNotSeller)

	bad := in
	bad.CategoryID = 999
	_, err = m.sellers.AddProduct(ctx, seller.ID, bad)
	assert.ErrorIs(t, err, repositories.ErrCategoryNotFound)

	product, err := m.sellers.AddProduct(ctx, seller.ID, in)
	require.NoError(t, err)
	assert.True(t, product.IsActive)

	stock := 7
	updated, err := m.sellers.UpdateProduct(ctx, seller.ID, product.ID, schemas.ProductUpdate{StockQuantity: &stock})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.StockQuantity)

	_, err = m.sellers.UpdateProduct(ctx, buyer.ID, product.ID, schemas.ProductUpdate{StockQuantity: &stock})
	assert.ErrorIs(t, err, ErrProductNotFound)
}
