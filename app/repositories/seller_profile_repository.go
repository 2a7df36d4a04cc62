package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SellerProfileRepository interface {
	Create(ctx context.Context, tx *gorm.DB, profile *models.SellerProfile) error
	FindByUserID(ctx context.Context, userID uint) (*models.SellerProfile, error)
	Update(ctx context.Context, profile *models.SellerProfile) error
	SetVerified(ctx context.Context, userID uint, verified bool) error
	AddSales(ctx context.Context, tx *gorm.DB, userID uint, qty int) error
	SetRating(ctx context.Context, tx *gorm.DB, userID uint, rating decimal.Decimal) error
}

type sellerProfileRepository struct {
	db *gorm.DB
}

func NewSellerProfileRepository(db *gorm.DB) SellerProfileRepository {
	return &sellerProfileRepository{db: db}
}

func (r *sellerProfileRepository) Create(ctx context.Context, tx *gorm.DB, profile *models.SellerProfile) error {
	if err := conn(r.db, tx).WithContext(ctx).Create(profile).Error; err != nil {
		if isDuplicate(err) {
			return ErrSellerProfileExists
		}
		return err
	}
	return nil
}

func (r *sellerProfileRepository) FindByUserID(ctx context.Context, userID uint) (*models.SellerProfile, error) {
	var profile models.SellerProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *sellerProfileRepository) Update(ctx context.Context, profile *models.SellerProfile) error {
	return r.db.WithContext(ctx).Omit("User").Save(profile).Error
}

func (r *sellerProfileRepository) SetVerified(ctx context.Context, userID uint, verified bool) error {
	result := r.db.WithContext(ctx).Model(&models.SellerProfile{}).Where("user_id = ?", userID).UpdateColumn("is_verified", verified)
	if result.Error != nil {
		return fmt.Errorf("failed to update verification for seller %d: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AddSales bumps total_sales. Sellers without a profile are skipped.
func (r *sellerProfileRepository) AddSales(ctx context.Context, tx *gorm.DB, userID uint, qty int) error {
	return conn(r.db, tx).WithContext(ctx).Model(&models.SellerProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("total_sales", gorm.Expr("total_sales + ?", qty)).Error
}

func (r *sellerProfileRepository) SetRating(ctx context.Context, tx *gorm.DB, userID uint, rating decimal.Decimal) error {
	if rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
		return fmt.Errorf("seller rating %s out of range", rating)
	}
	return conn(r.db, tx).WithContext(ctx).Model(&models.SellerProfile{}).
		Where("user_id = ?", userID).
		UpdateColumn("rating", rating.Round(2)).Error
}
