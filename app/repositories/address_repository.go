package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AddressRepository interface {
	CreateAddress(ctx context.Context, address *models.Address) error
	FindAddressByID(ctx context.Context, id uint) (*models.Address, error)
	FindUserAddress(ctx context.Context, userID, addressID uint) (*models.Address, error)
	FindAddressesByUserID(ctx context.Context, userID uint) ([]models.Address, error)
	DeleteAddress(ctx context.Context, userID, addressID uint) error
	SetDefaultAddress(ctx context.Context, userID, addressID uint) error
	GetDefaultAddressByUserID(ctx context.Context, userID uint) (*models.Address, error)
}

// GormAddressRepository keeps at most one default address per user: the first
// address a user adds becomes default, and marking another default clears the rest.
type GormAddressRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormAddressRepository(db *gorm.DB, logger *zap.Logger) *GormAddressRepository {
	return &GormAddressRepository{db: db, logger: logger}
}

func (r *GormAddressRepository) CreateAddress(ctx context.Context, address *models.Address) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if address.IsDefault {
			err := tx.Model(&models.Address{}).
				Where("user_id = ?", address.UserID).
				UpdateColumn("is_default", false).Error
			if err != nil {
				return fmt.Errorf("failed to unset old default address: %w", err)
			}
		} else {
			var count int64
			if err := tx.Model(&models.Address{}).Where("user_id = ?", address.UserID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				address.IsDefault = true
			}
		}
		return tx.Create(address).Error
	})
	if err != nil {
		r.logger.Error("Failed to create address", zap.Uint("user_id", address.UserID), zap.Error(err))
		return fmt.Errorf("failed to create address: %w", err)
	}
	return nil
}

func (r *GormAddressRepository) FindAddressByID(ctx context.Context, id uint) (*models.Address, error) {
	var address models.Address
	if err := r.db.WithContext(ctx).First(&address, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to find address", zap.Uint("address_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to find address by ID: %w", err)
	}
	return &address, nil
}

// FindUserAddress returns the address only when it belongs to userID.
func (r *GormAddressRepository) FindUserAddress(ctx context.Context, userID, addressID uint) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return &address, nil
}

func (r *GormAddressRepository) FindAddressesByUserID(ctx context.Context, userID uint) ([]models.Address, error) {
	var addresses []models.Address
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("is_default DESC, created_at DESC, id DESC").Find(&addresses).Error; err != nil {
		r.logger.Error("Failed to find addresses", zap.Uint("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("failed to find addresses by user ID: %w", err)
	}
	return addresses, nil
}

// DeleteAddress removes the address and, if it was the default, promotes the
// most recent remaining one.
func (r *GormAddressRepository) DeleteAddress(ctx context.Context, userID, addressID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var address models.Address
		if err := tx.Where("id = ? AND user_id = ?", addressID, userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Delete(&models.Address{}, addressID).Error; err != nil {
			return fmt.Errorf("failed to delete address: %w", err)
		}
		if !address.IsDefault {
			return nil
		}

		var next models.Address
		err := tx.Where("user_id = ?", userID).Order("created_at DESC, id DESC").First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&models.Address{}).Where("id = ?", next.ID).UpdateColumn("is_default", true).Error
	})
}

func (r *GormAddressRepository) SetDefaultAddress(ctx context.Context, userID, addressID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).UpdateColumn("is_default", false).Error; err != nil {
			r.logger.Error("Failed to unset default addresses", zap.Uint("user_id", userID), zap.Error(err))
			return fmt.Errorf("failed to unset existing default addresses: %w", err)
		}

		result := tx.Model(&models.Address{}).Where("id = ? AND user_id = ?", addressID, userID).UpdateColumn("is_default", true)
		if result.Error != nil {
			r.logger.Error("Failed to set default address", zap.Uint("user_id", userID), zap.Uint("address_id", addressID), zap.Error(result.Error))
			return fmt.Errorf("failed to set new default address: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (r *GormAddressRepository) GetDefaultAddressByUserID(ctx context.Context, userID uint) (*models.Address, error) {
	var address models.Address
	err := r.db.WithContext(ctx).Where("user_id = ? AND is_default = ?", userID, true).First(&address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get default address: %w", err)
	}
	return &address, nil
}
