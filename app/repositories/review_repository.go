package repositories

import (
	"context"
	"errors"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

// RatingStats is the count and sum of review ratings for one product or seller.
type RatingStats struct {
	Count int64
	Sum   int64
}

type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *models.ProductReview) error
	GetByID(ctx context.Context, id uint) (*models.ProductReview, error)
	ListByProduct(ctx context.Context, productID uint, limit, offset int) ([]models.ProductReview, int64, error)
	IncrementHelpful(ctx context.Context, id uint) error
	ProductRatingStats(ctx context.Context, tx *gorm.DB, productID uint) (RatingStats, error)
	SellerRatingStats(ctx context.Context, tx *gorm.DB, sellerID uint) (RatingStats, error)
}

type gormReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &gormReviewRepository{db: db}
}

func (r *gormReviewRepository) Create(ctx context.Context, tx *gorm.DB, review *models.ProductReview) error {
	return conn(r.db, tx).WithContext(ctx).Omit("Product", "User", "OrderItem").Create(review).Error
}

func (r *gormReviewRepository) GetByID(ctx context.Context, id uint) (*models.ProductReview, error) {
	var review models.ProductReview
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *gormReviewRepository) ListByProduct(ctx context.Context, productID uint, limit, offset int) ([]models.ProductReview, int64, error) {
	var reviews []models.ProductReview
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.ProductReview{}).Where("product_id = ?", productID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("helpful_count DESC, created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error

	return reviews, total, err
}

func (r *gormReviewRepository) IncrementHelpful(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.ProductReview{}).Where("id = ?", id).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormReviewRepository) ProductRatingStats(ctx context.Context, tx *gorm.DB, productID uint) (RatingStats, error) {
	var stats RatingStats
	err := conn(r.db, tx).WithContext(ctx).Model(&models.ProductReview{}).
		Select("COUNT(*) AS count, COALESCE(SUM(rating), 0) AS sum").
		Where("product_id = ?", productID).
		Scan(&stats).Error
	return stats, err
}

func (r *gormReviewRepository) SellerRatingStats(ctx context.Context, tx *gorm.DB, sellerID uint) (RatingStats, error) {
	var stats RatingStats
	err := conn(r.db, tx).WithContext(ctx).Model(&models.ProductReview{}).
		Select("COUNT(*) AS count, COALESCE(SUM(product_reviews.rating), 0) AS sum").
		Joins("JOIN products ON products.id = product_reviews.product_id").
		Where("products.seller_id = ?", sellerID).
		Scan(&stats).Error
	return stats, err
}
