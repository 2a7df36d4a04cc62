package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/calc"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CartService struct {
	cartItemRepo repositories.CartItemRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	logger       *zap.Logger
}

func NewCartService(cartItemRepo repositories.CartItemRepositoryImpl, productRepo repositories.ProductRepositoryImpl, logger *zap.Logger) *CartService {
	return &CartService{
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Add puts a product in the user's cart. Adding a product that is already in
// the cart increases the quantity of the existing line.
func (s *CartService) Add(ctx context.Context, userID uint, in schemas.CartItemCreate) (*models.CartItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	product, err := s.orderable(ctx, in.ProductID, in.Quantity)
	if err != nil {
		return nil, err
	}

	item := in.ToModel(userID)
	if err := s.cartItemRepo.AddOrIncrement(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to add product %d to cart: %w", in.ProductID, err)
	}
	item.Product = product

	s.logger.Debug("Cart item added",
		zap.Uint("user_id", userID),
		zap.Uint("product_id", in.ProductID),
		zap.Int("quantity", item.Quantity),
	)
	return item, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID uint, in schemas.CartItemUpdate) (*models.CartItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	item, err := s.cartItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.UserID != userID {
		return nil, ErrCartItemNotFound
	}
	if _, err := s.orderable(ctx, item.ProductID, in.Quantity); err != nil {
		return nil, err
	}

	if err := s.cartItemRepo.UpdateQuantity(ctx, userID, itemID, in.Quantity); err != nil {
		return nil, err
	}
	in.ApplyTo(item)
	return item, nil
}

func (s *CartService) Remove(ctx context.Context, userID, itemID uint) error {
	err := s.cartItemRepo.Remove(ctx, userID, itemID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrCartItemNotFound
	}
	return err
}

func (s *CartService) Items(ctx context.Context, userID uint) ([]models.CartItem, error) {
	return s.cartItemRepo.ListByUser(ctx, nil, userID)
}

// Subtotal sums quantity x current price over the cart.
func (s *CartService) Subtotal(ctx context.Context, userID uint) (decimal.Decimal, error) {
	items, err := s.Items(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, item := range items {
		if item.Product == nil {
			continue
		}
		subtotal = subtotal.Add(calc.LineTotal(item.Quantity, item.Product.Price))
	}
	return subtotal, nil
}

func (s *CartService) orderable(ctx context.Context, productID uint, qty int) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.Orderable(qty) {
		return nil, unorderable(product, qty)
	}
	return product, nil
}

// unorderable explains why qty units of product cannot be ordered.
func unorderable(product *models.Product, qty int) error {
	switch {
	case !product.IsActive:
		return fmt.Errorf("%w: %s", ErrProductUnavailable, product.Name)
	case qty < product.MinOrderQuantity:
		return fmt.Errorf("%w: %s needs at least %d", ErrBelowMinimumOrder, product.Name, product.MinOrderQuantity)
	default:
		return fmt.Errorf("%w: %s has %d left", repositories.ErrInsufficientStock, product.Name, product.StockQuantity)
	}
}
