package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *models.Delivery) error
	GetByOrderID(ctx context.Context, orderID uint) (*models.Delivery, error)
	Update(ctx context.Context, tx *gorm.DB, delivery *models.Delivery) error
}

type gormDeliveryRepository struct {
	db *gorm.DB
}

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository {
	return &gormDeliveryRepository{db: db}
}

// Create stores the delivery for an order. An order has at most one delivery:
// a second one fails with ErrDeliveryExists, both from the pre-check and from
// the unique index should two writers race.
func (r *gormDeliveryRepository) Create(ctx context.Context, delivery *models.Delivery) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Delivery{}).Where("order_id = ?", delivery.OrderID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDeliveryExists
		}
		if err := tx.Omit("Order").Create(delivery).Error; err != nil {
			if isDuplicate(err) {
				return ErrDeliveryExists
			}
			return fmt.Errorf("failed to create delivery for order %d: %w", delivery.OrderID, err)
		}
		return nil
	})
}

func (r *gormDeliveryRepository) GetByOrderID(ctx context.Context, orderID uint) (*models.Delivery, error) {
	var delivery models.Delivery
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).First(&delivery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &delivery, nil
}

func (r *gormDeliveryRepository) Update(ctx context.Context, tx *gorm.DB, delivery *models.Delivery) error {
	delivery.UpdatedAt = time.Now()
	return conn(r.db, tx).WithContext(ctx).Omit("Order").Save(delivery).Error
}
