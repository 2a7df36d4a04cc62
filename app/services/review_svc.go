package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/calc"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReviewService struct {
	db          *gorm.DB
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepositoryImpl
	sellerRepo  repositories.SellerProfileRepository
	orderRepo   repositories.OrderRepository
	logger      *zap.Logger
}

func NewReviewService(
	db *gorm.DB,
	reviewRepo repositories.ReviewRepository,
	productRepo repositories.ProductRepositoryImpl,
	sellerRepo repositories.SellerProfileRepository,
	orderRepo repositories.OrderRepository,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		db:          db,
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		sellerRepo:  sellerRepo,
		orderRepo:   orderRepo,
		logger:      logger,
	}
}

// Create stores a review and refreshes the product and seller ratings. When
// orderItemID is given it must be the user's purchase of this product, and the
// review is marked as a verified purchase.
func (s *ReviewService) Create(ctx context.Context, userID, productID uint, orderItemID *uint, in schemas.ProductReviewCreate) (*models.ProductReview, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	review := in.ToModel(productID, userID)
	if orderItemID != nil {
		item, err := s.orderRepo.FindItemByID(ctx, nil, *orderItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.ProductID != productID || item.Order == nil || item.Order.UserID != userID {
			return nil, ErrOrderItemMismatch
		}
		id := item.ID
		review.OrderItemID = &id
		review.IsVerifiedPurchase = true
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.Create(ctx, tx, review); err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		stats, err := s.reviewRepo.ProductRatingStats(ctx, tx, productID)
		if err != nil {
			return err
		}
		if err := s.productRepo.SetRating(ctx, tx, productID, calc.AverageRating(stats.Sum, stats.Count), int(stats.Count)); err != nil {
			return err
		}

		sellerStats, err := s.reviewRepo.SellerRatingStats(ctx, tx, product.SellerID)
		if err != nil {
			return err
		}
		return s.sellerRepo.SetRating(ctx, tx, product.SellerID, calc.AverageRating(sellerStats.Sum, sellerStats.Count))
	})
	if err != nil {
		s.logger.Error("Failed to create review", zap.Uint("product_id", productID), zap.Error(err))
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) List(ctx context.Context, productID uint, limit, offset int) ([]models.ProductReview, int64, error) {
	return s.reviewRepo.ListByProduct(ctx, productID, limit, offset)
}

func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID uint) error {
	err := s.reviewRepo.IncrementHelpful(ctx, reviewID)
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("review %d: %w", reviewID, err)
	}
	return err
}
