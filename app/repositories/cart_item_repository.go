package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type CartItemRepositoryImpl interface {
	AddOrIncrement(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, userID, itemID uint, qty int) error
	Remove(ctx context.Context, userID, itemID uint) error
	GetByID(ctx context.Context, id uint) (*models.CartItem, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.CartItem, error)
	ClearByUser(ctx context.Context, tx *gorm.DB, userID uint) error
}

type CartItemRepository struct {
	DB *gorm.DB
}

func NewCartItemRepository(db *gorm.DB) CartItemRepositoryImpl {
	return &CartItemRepository{db}
}

// AddOrIncrement stores item, or adds its quantity to the existing line for the
// same user and product. On return item reflects the stored row.
func (r *CartItemRepository) AddOrIncrement(ctx context.Context, item *models.CartItem) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CartItem
		err := tx.Where("user_id = ? AND product_id = ?", item.UserID, item.ProductID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Omit("User", "Product").Create(item).Error
		}
		if err != nil {
			return err
		}

		existing.Quantity += item.Quantity
		if err := tx.Omit("User", "Product").Save(&existing).Error; err != nil {
			return err
		}
		*item = existing
		return nil
	})
}

func (r *CartItemRepository) UpdateQuantity(ctx context.Context, userID, itemID uint, qty int) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.CartItem
		if err := tx.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		item.Quantity = qty
		return tx.Omit("User", "Product").Save(&item).Error
	})
}

func (r *CartItemRepository) Remove(ctx context.Context, userID, itemID uint) error {
	result := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CartItemRepository) GetByID(ctx context.Context, id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.DB.WithContext(ctx).Preload("Product").First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartItemRepository) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := conn(r.DB, tx).WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("added_at, id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartItemRepository) ClearByUser(ctx context.Context, tx *gorm.DB, userID uint) error {
	return conn(r.DB, tx).WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
