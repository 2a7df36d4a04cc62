package services

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type OrderService struct {
	db        *gorm.DB
	orderRepo repositories.OrderRepository
	logger    *zap.Logger
}

func NewOrderService(db *gorm.DB, orderRepo repositories.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{db: db, orderRepo: orderRepo, logger: logger}
}

func (s *OrderService) Get(ctx context.Context, userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) History(ctx context.Context, userID uint) ([]models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

// Sales lists the order items of a seller's products.
func (s *OrderService) Sales(ctx context.Context, sellerID uint) ([]models.OrderItem, error) {
	return s.orderRepo.ListItemsBySeller(ctx, sellerID)
}

// MarkPaid records a successful payment and confirms a pending order. Both
// writes commit together.
func (s *OrderService) MarkPaid(ctx context.Context, orderNumber string) (*models.Order, error) {
	order, err := s.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	confirm := order.Status == models.OrderStatusPending
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.UpdatePaymentStatus(ctx, tx, order.ID, models.PaymentStatusPaid); err != nil {
			return err
		}
		if !confirm {
			return nil
		}
		err := s.orderRepo.UpdateStatus(ctx, tx, order.ID, models.OrderStatusConfirmed)
		if err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to mark order paid", zap.String("order_number", orderNumber), zap.Error(err))
		return nil, err
	}

	if confirm {
		order.Status = models.OrderStatusConfirmed
	}
	order.PaymentStatus = models.PaymentStatusPaid
	s.logger.Info("Order paid", zap.String("order_number", orderNumber))
	return order, nil
}
