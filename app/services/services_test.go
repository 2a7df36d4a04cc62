package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/testdb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// marketplace wires every service to one test database.
type marketplace struct {
	db       *gorm.DB
	users    *UserService
	sellers  *SellerService
	carts    *CartService
	checkout *CheckoutService
	orders   *OrderService
	delivery *DeliveryService
	reviews  *ReviewService

	userRepo    repositories.UserRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	sellerRepo  repositories.SellerProfileRepository
	orderRepo   repositories.OrderRepository
}

func newMarketplace(t *testing.T) *marketplace {
	db := testdb.Open(t)
	logger := testdb.Logger()

	userRepo := repositories.NewUserRepository(db)
	addressRepo := repositories.NewGormAddressRepository(db, logger)
	sellerRepo := repositories.NewSellerProfileRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	deliveryRepo := repositories.NewDeliveryRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)

	users := NewUserService(userRepo, addressRepo, logger)
	users.cost = bcrypt.MinCost

	return &marketplace{
		db:          db,
		users:       users,
		sellers:     NewSellerService(db, userRepo, sellerRepo, productRepo, categoryRepo, logger),
		carts:       NewCartService(cartRepo, productRepo, logger),
		checkout:    NewCheckoutService(db, cartRepo, productRepo, sellerRepo, addressRepo, orderRepo, dec("12"), logger),
		orders:      NewOrderService(db, orderRepo, logger),
		delivery:    NewDeliveryService(db, deliveryRepo, orderRepo, logger),
		reviews:     NewReviewService(db, reviewRepo, productRepo, sellerRepo, orderRepo, logger),
		userRepo:    userRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		orderRepo:   orderRepo,
	}
}

func (m *marketplace) register(t *testing.T, email string) *models.User {
	t.Helper()
	user, err := m.users.Register(context.Background(), schemas.UserCreate{
		Email:    email,
		Password: "password123",
		FullName: "Test User",
	})
	require.NoError(t, err)
	return user
}

func (m *marketplace) seller(t *testing.T, email string) *models.User {
	t.Helper()
	user := m.register(t, email)
	_, err := m.sellers.Open(context.Background(), user.ID, schemas.SellerProfileCreate{StoreName: "Store " + email})
	require.NoError(t, err)
	return user
}

func (m *marketplace) category(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, IsActive: true}
	require.NoError(t, repositories.NewCategoryRepository(m.db).Create(context.Background(), category))
	return category
}

func (m *marketplace) product(t *testing.T, sellerID, categoryID uint, price string, stock, minQty int) *models.Product {
	t.Helper()
	product, err := m.sellers.AddProduct(context.Background(), sellerID, schemas.ProductCreate{
		CategoryID:       categoryID,
		Name:             fmt.Sprintf("Product %s", price),
		Price:            dec(price),
		StockQuantity:    stock,
		MinOrderQuantity: minQty,
		WeightKg:         dec("1"),
	})
	require.NoError(t, err)
	return product
}

func (m *marketplace) address(t *testing.T, userID uint) *models.Address {
	t.Helper()
	address, err := m.users.AddAddress(context.Background(), userID, schemas.AddressCreate{
		Label:       "Home",
		FullAddress: "Jl. Merdeka 1",
		City:        "Bandung",
		State:       "Jawa Barat",
		PostalCode:  "40111",
	})
	require.NoError(t, err)
	return address
}

func (m *marketplace) addToCart(t *testing.T, userID, productID uint, qty int) {
	t.Helper()
	_, err := m.carts.Add(context.Background(), userID, schemas.CartItemCreate{ProductID: productID, Quantity: qty})
	require.NoError(t, err)
}
