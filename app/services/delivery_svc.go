package services

import (
	"context"
	"maps"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeliveryUpdate is what the delivery provider reports about a shipment.
// Response is stored as-is.
type DeliveryUpdate struct {
	Status            models.DeliveryStatus
	ProviderID        *string
	TrackingNumber    *string
	CourierPhone      *string
	EstimatedDelivery *time.Time
	Response          map[string]any
}

type DeliveryService struct {
	db           *gorm.DB
	deliveryRepo repositories.DeliveryRepository
	orderRepo    repositories.OrderRepository
	logger       *zap.Logger
	now          func() time.Time
}

func NewDeliveryService(db *gorm.DB, deliveryRepo repositories.DeliveryRepository, orderRepo repositories.OrderRepository, logger *zap.Logger) *DeliveryService {
	return &DeliveryService{
		db:           db,
		deliveryRepo: deliveryRepo,
		orderRepo:    orderRepo,
		logger:       logger,
		now:          time.Now,
	}
}

// Create opens the delivery of an order. An order has at most one delivery.
func (s *DeliveryService) Create(ctx context.Context, orderID uint, in schemas.DeliveryCreate) (*models.Delivery, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	delivery := in.ToModel(orderID)
	if err := s.deliveryRepo.Create(ctx, delivery); err != nil {
		return nil, err
	}
	s.logger.Info("Delivery created",
		zap.Uint("order_id", orderID),
		zap.String("courier", delivery.CourierName),
		zap.String("total_fee", format.Rupiah(delivery.TotalFee())),
	)
	return delivery, nil
}

// UpdateStatus records a provider update and moves the order along with it.
func (s *DeliveryService) UpdateStatus(ctx context.Context, orderID uint, update DeliveryUpdate) (*models.Delivery, error) {
	if !update.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	delivery, err := s.deliveryRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if delivery == nil {
		return nil, ErrDeliveryNotFound
	}

	delivery.Status = update.Status
	if update.ProviderID != nil {
		delivery.KomerceDeliveryID = update.ProviderID
	}
	if update.TrackingNumber != nil {
		delivery.TrackingNumber = update.TrackingNumber
	}
	if update.CourierPhone != nil {
		delivery.CourierPhone = update.CourierPhone
	}
	if update.EstimatedDelivery != nil {
		delivery.EstimatedDelivery = update.EstimatedDelivery
	}
	if update.Response != nil {
		delivery.KomerceResponse = maps.Clone(update.Response)
	}
	if update.Status == models.DeliveryStatusDelivered && delivery.ActualDelivery == nil {
		now := s.now()
		delivery.ActualDelivery = &now
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.deliveryRepo.Update(ctx, tx, delivery); err != nil {
			return err
		}
		if status, ok := orderStatusFor(update.Status); ok {
			return s.orderRepo.UpdateStatus(ctx, tx, orderID, status)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to update delivery", zap.Uint("order_id", orderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Delivery status changed", zap.Uint("order_id", orderID), zap.String("status", string(update.Status)))
	return delivery, nil
}

// orderStatusFor maps a delivery status to the order status it implies.
func orderStatusFor(status models.DeliveryStatus) (models.OrderStatus, bool) {
	switch status {
	case models.DeliveryStatusPickedUp, models.DeliveryStatusInTransit, models.DeliveryStatusOutForDelivery:
		return models.OrderStatusShipped, true
	case models.DeliveryStatusDelivered:
		return models.OrderStatusDelivered, true
	case models.DeliveryStatusReturned:
		return models.OrderStatusReturned, true
	}
	return "", false
}
