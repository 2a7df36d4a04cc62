package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/calc"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CheckoutService struct {
	db           *gorm.DB
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	sellerRepo   repositories.SellerProfileRepository
	addressRepo  repositories.AddressRepository
	orderRepo    repositories.OrderRepository
	taxPercent   decimal.Decimal
	logger       *zap.Logger
}

func NewCheckoutService(
	db *gorm.DB,
	cartItemRepo repositories.CartItemRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	sellerRepo repositories.SellerProfileRepository,
	addressRepo repositories.AddressRepository,
	orderRepo repositories.OrderRepository,
	taxPercent decimal.Decimal,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		db:           db,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		sellerRepo:   sellerRepo,
		addressRepo:  addressRepo,
		orderRepo:    orderRepo,
		taxPercent:   taxPercent,
		logger:       logger,
	}
}

// NewOrderNumber returns a number of the form ORD-YYYYMMDD-XXXXXXXX.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.New().String()[:8]))
}

// PlaceOrder turns the user's cart into an order. Everything happens in one
// transaction: stock is taken, the order and its items are written and the
// cart is cleared, or nothing changes at all.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint, in schemas.OrderCreate, shippingFee decimal.Decimal) (*models.Order, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if shippingFee.IsNegative() || !validation.FitsPrecision(shippingFee, 12, 2) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShippingFee, shippingFee)
	}

	address, err := s.addressRepo.FindUserAddress(ctx, userID, in.ShippingAddressID)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, ErrAddressNotFound
	}

	order := in.ToModel(userID, NewOrderNumber(time.Now()))

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items, err := s.cartItemRepo.ListByUser(ctx, tx, userID)
		if err != nil {
			return fmt.Errorf("failed to load cart: %w", err)
		}
		if len(items) == 0 {
			return ErrEmptyCart
		}

		subtotal := decimal.Zero
		sold := map[uint]int{}
		for _, item := range items {
			product := item.Product
			if product == nil {
				return fmt.Errorf("%w: %d", ErrProductNotFound, item.ProductID)
			}
			if !product.CanFulfil(item.Quantity) {
				return unorderable(product, item.Quantity)
			}
			if err := s.productRepo.DecrementStock(ctx, tx, product.ID, item.Quantity); err != nil {
				return err
			}

			line := models.OrderItem{
				ProductID:  product.ID,
				Quantity:   item.Quantity,
				UnitPrice:  product.Price,
				TotalPrice: calc.LineTotal(item.Quantity, product.Price),
				SellerID:   product.SellerID,
			}
			if !line.Balanced() {
				return fmt.Errorf("%w: line total of %s", ErrUnbalancedOrder, product.Name)
			}
			order.OrderItems = append(order.OrderItems, line)
			subtotal = subtotal.Add(line.TotalPrice)
			sold[product.SellerID] += item.Quantity
		}

		order.Subtotal = subtotal
		order.ShippingFee = shippingFee
		order.TaxAmount = calc.CalculateTax(subtotal, s.taxPercent)
		order.DiscountAmount = decimal.Zero
		order.TotalAmount = calc.OrderTotal(order.Subtotal, order.ShippingFee, order.TaxAmount, order.DiscountAmount)
		if !order.Balanced() {
			return fmt.Errorf("%w: %s", ErrUnbalancedOrder, order.OrderNumber)
		}

		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for sellerID, qty := range sold {
			if err := s.sellerRepo.AddSales(ctx, tx, sellerID, qty); err != nil {
				return fmt.Errorf("failed to record sales for seller %d: %w", sellerID, err)
			}
		}
		return s.cartItemRepo.ClearByUser(ctx, tx, userID)
	})
	if err != nil {
		s.logger.Warn("Checkout failed", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order placed",
		zap.Uint("order_id", order.ID),
		zap.String("order_number", order.OrderNumber),
		zap.Int("items", len(order.OrderItems)),
		zap.String("total", format.Rupiah(order.TotalAmount)),
	)
	return order, nil
}
