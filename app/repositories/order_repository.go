package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Order, error)
	ListItemsBySeller(ctx context.Context, sellerID uint) ([]models.OrderItem, error)
	FindItemByID(ctx context.Context, tx *gorm.DB, id uint) (*models.OrderItem, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, orderID uint, status models.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, tx *gorm.DB, orderID uint, paymentStatus string) error
}

type gormOrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepository{db: db}
}

// Create inserts the order together with its OrderItems.
func (r *gormOrderRepository) Create(ctx context.Context, tx *gorm.DB, order *models.Order) error {
	err := conn(r.db, tx).WithContext(ctx).Omit("User", "ShippingAddress", "Delivery").Create(order).Error
	if isDuplicate(err) {
		return ErrOrderNumberTaken
	}
	return err
}

func (r *gormOrderRepository) preloaded() *gorm.DB {
	return r.db.Preload("OrderItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Preload("OrderItems.Product").Preload("ShippingAddress").Preload("Delivery")
}

func (r *gormOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.preloaded().WithContext(ctx).First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) FindByNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var order models.Order
	err := r.preloaded().WithContext(ctx).First(&order, "order_number = ?", orderNumber).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *gormOrderRepository) ListByUser(ctx context.Context, userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

// ListItemsBySeller reads the denormalized seller_id so no product join is needed.
func (r *gormOrderRepository) ListItemsBySeller(ctx context.Context, sellerID uint) ([]models.OrderItem, error) {
	var items []models.OrderItem
	err := r.db.WithContext(ctx).
		Preload("Order").
		Where("seller_id = ?", sellerID).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

func (r *gormOrderRepository) FindItemByID(ctx context.Context, tx *gorm.DB, id uint) (*models.OrderItem, error) {
	var item models.OrderItem
	err := conn(r.db, tx).WithContext(ctx).Preload("Order").First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *gormOrderRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, orderID uint, status models.OrderStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid order status %q", status)
	}
	result := conn(r.db, tx).WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).
		UpdateColumns(map[string]interface{}{"status": status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormOrderRepository) UpdatePaymentStatus(ctx context.Context, tx *gorm.DB, orderID uint, paymentStatus string) error {
	if paymentStatus == "" || len(paymentStatus) > 20 {
		return fmt.Errorf("invalid payment status %q", paymentStatus)
	}
	result := conn(r.db, tx).WithContext(ctx).Model(&models.Order{}).Where("id = ?", orderID).
		UpdateColumns(map[string]interface{}{"payment_status": paymentStatus, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
