package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestNewOrderNumber(t *testing.T) {
	number := NewOrderNumber(time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC))
	assert.Regexp(t, regexp.MustCompile(`^ORD-20250309-[0-9A-F]{8}$`), number)
	assert.NotEqual(t, number, NewOrderNumber(time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)))
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	seller := m.seller(t, "seller@example.com")
	buyer := m.register(t, "buyer@example.com")
	category := m.category(t, "Coffee")
	coffee := m.product(t, seller.ID, category.ID, "99.99", 10, 1)
	mug := m.product(t, seller.ID, category.ID, "25.50", 5, 2)
	address := m.address(t, buyer.ID)

	m.addToCart(t, buyer.ID, coffee.ID, 3)
	m.addToCart(t, buyer.ID, mug.ID, 2)

	order, err := m.checkout.PlaceOrder(ctx, buyer.ID, schemas.OrderCreate{
		ShippingAddressID: address.ID,
		PaymentMethod:     "bank_transfer",
	}, dec("15000"))
	require.NoError(t, err)

	// 3 x 99.99 + 2 x 25.50 = 350.97; tax 12% = 42.1164 -> 42.12
	assert.True(t, dec("350.97").Equal(order.Subtotal), order.Subtotal.String())
	assert.True(t, dec("42.12").Equal(order.TaxAmount), order.TaxAmount.String())
	assert.True(t, dec("15393.09").Equal(order.TotalAmount), order.TotalAmount.String())
	assert.True(t, order.Balanced())

	stored, err := m.orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.Balanced())
	require.Len(t, stored.OrderItems, 2)
	for _, item := range stored.OrderItems {
		assert.True(t, item.Balanced())
		assert.Equal(t, seller.ID, item.SellerID)
	}

	got, err := m.productRepo.GetByID(ctx, coffee.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.StockQuantity)
	assert.Equal(t, 3, got.TotalSold)

	profile, err := m.sellerRepo.FindByUserID(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, profile.TotalSales)

	items, err := m.carts.Items(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	sales, err := m.orders.Sales(ctx, seller.ID)
	require.NoError(t, err)
	assert.Len(t, sales, 2)
}

func TestCheckoutService_RollsBackOnShortStock(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	seller := m.seller(t, "seller@example.com")
	buyer := m.register(t, "buyer@example.com")
	category := m.category(t, "Coffee")
	plenty := m.product(t, seller.ID, category.ID, "10.00", 10, 1)
	scarce := m.product(t, seller.ID, category.ID, "20.00", 1, 1)
	address := m.address(t, buyer.ID)

	m.addToCart(t, buyer.ID, plenty.ID, 2)
	m.addToCart(t, buyer.ID, scarce.ID, 2)

	_, err := m.checkout.PlaceOrder(ctx, buyer.ID, schemas.OrderCreate{ShippingAddressID: address.ID, PaymentMethod: "cod"}, dec("0"))
	assert.ErrorIs(t, err, repositories.ErrInsufficientStock)

	got, err := m.productRepo.GetByID(ctx, plenty.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.StockQuantity)

	items, err := m.carts.Items(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	orders, err := m.orders.History(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutService_Rejections(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	buyer := m.register(t, "buyer@example.com")
	other := m.register(t, "other@example.com")
	address := m.address(t, buyer.ID)
	foreign := m.address(t, other.ID)

	in := schemas.OrderCreate{ShippingAddressID: address.ID, PaymentMethod: "cod"}
	_, err := m.checkout.PlaceOrder(ctx, buyer.ID, in, dec("0"))
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = m.checkout.PlaceOrder(ctx, buyer.ID, in, dec("-1"))
	assert.ErrorIs(t, err, ErrInvalidShippingFee)

	_, err = m.checkout.PlaceOrder(ctx, buyer.ID, schemas.OrderCreate{ShippingAddressID: foreign.ID, PaymentMethod: "cod"}, dec("0"))
	assert.ErrorIs(t, err, ErrAddressNotFound)

	_, err = m.checkout.PlaceOrder(ctx, buyer.ID, schemas.OrderCreate{ShippingAddressID: address.ID}, dec("0"))
	assert.Error(t, err)
}

func TestOrderService_MarkPaid(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	seller := m.seller(t, "seller@example.com")
	buyer := m.register(t, "buyer@example.com")
	category := m.category(t, "Coffee")
	product := m.product(t, seller.ID, category.ID, "10.00", 10, 1)
	address := m.address(t, buyer.ID)
	m.addToCart(t, buyer.ID, product.ID, 1)

	order, err := m.checkout.PlaceOrder(ctx, buyer.ID, schemas.OrderCreate{ShippingAddressID: address.ID, PaymentMethod: "cod"}, dec("0"))
	require.NoError(t, err)

	paid, err := m.orders.MarkPaid(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.PaymentStatus)

	got, err := m.orders.Get(ctx, buyer.ID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", string(got.Status))

	_, err = m.orders.Get(ctx, seller.ID, order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	_, err = m.orders.MarkPaid(ctx, "ORD-missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// statusWriteFails lets the payment write through and fails the status write.
type statusWriteFails struct {
	repositories.OrderRepository
}

func (statusWriteFails) UpdateStatus(context.Context, *gorm.DB, uint, models.OrderStatus) error {
	return errors.New("status write failed")
}

func TestOrderService_MarkPaidIsAtomic(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	seller := m.seller(t, "seller@example.com")
	buyer := m.register(t, "buyer@example.com")
	category := m.category(t, "Coffee")
	product := m.product(t, seller.ID, category.ID, "10.00", 10, 1)
	address := m.address(t, buyer.ID)
	m.addToCart(t, buyer.ID, product.ID, 1)

	order, err := m.checkout.PlaceOrder(ctx, buyer.ID, schemas.OrderCreate{ShippingAddressID: address.ID, PaymentMethod: "cod"}, dec("0"))
	require.NoError(t, err)

	orders := NewOrderService(m.db, statusWriteFails{m.orderRepo}, testdb.Logger())
	_, err = orders.MarkPaid(ctx, order.OrderNumber)
	require.Error(t, err)

	got, err := m.orderRepo.FindByNumber(ctx, order.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, got.PaymentStatus)
	assert.Equal(t, models.OrderStatusPending, got.Status)
}

func TestCheckoutService_RejectsImpreciseShippingFee(t *testing.T) {
	m := newMarketplace(t)
	ctx := context.Background()

	seller := m.seller(t, "seller@example.com")
	buyer := m.register(t, "buyer@example.com")
	category := m.category(t, "Coffee")
	product := m.product(t, seller.ID, category.ID, "10.00", 10, 1)
	address := m.address(t, buyer.ID)
	m.addToCart(t, buyer.ID, product.ID, 2)

	in := schemas.OrderCreate{ShippingAddressID: address.ID, PaymentMethod: "cod"}
	for _, fee := range []string{"1.005", "10000000000.00"} {
		_, err := m.checkout.PlaceOrder(ctx, buyer.ID, in, dec(fee))
		assert.ErrorIs(t, err, ErrInvalidShippingFee, fee)
	}

	got, err := m.productRepo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.StockQuantity)
	items, err := m.carts.Items(ctx, buyer.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	order, err := m.checkout.PlaceOrder(ctx, buyer.ID, in, dec("1.50"))
	require.NoError(t, err)
	assert.Equal(t, "1.5", order.ShippingFee.String())
}
