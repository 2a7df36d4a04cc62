package services

import (
	"context"
	"fmt"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SellerService struct {
	db           *gorm.DB
	userRepo     repositories.UserRepositoryImpl
	sellerRepo   repositories.SellerProfileRepository
	productRepo  repositories.ProductRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	logger       *zap.Logger
}

func NewSellerService(
	db *gorm.DB,
	userRepo repositories.UserRepositoryImpl,
	sellerRepo repositories.SellerProfileRepository,
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	logger *zap.Logger,
) *SellerService {
	return &SellerService{
		db:           db,
		userRepo:     userRepo,
		sellerRepo:   sellerRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Open creates the seller profile of a user and promotes a buyer to seller.
// A user holds at most one profile.
func (s *SellerService) Open(ctx context.Context, userID uint, in schemas.SellerProfileCreate) (*models.SellerProfile, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.SellerProfile != nil {
		return nil, repositories.ErrSellerProfileExists
	}

	profile := in.ToModel(userID)
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.sellerRepo.Create(ctx, tx, profile); err != nil {
			return err
		}
		if user.Role == models.RoleBuyer {
			return s.userRepo.UpdateRole(ctx, tx, userID, models.RoleSeller)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to open store", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Store opened", zap.Uint("user_id", userID), zap.String("store_name", profile.StoreName))
	return profile, nil
}

// AddProduct lists a new product for a seller in an existing category.
func (s *SellerService) AddProduct(ctx context.Context, sellerID uint, in schemas.ProductCreate) (*models.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if !user.IsSeller() && user.Role != models.RoleAdmin {
		return nil, ErrNotSeller
	}

	category, err := s.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, repositories.ErrCategoryNotFound
	}

	product := in.ToModel(sellerID)
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (s *SellerService) UpdateProduct(ctx context.Context, sellerID, productID uint, in schemas.ProductUpdate) (*models.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.SellerID != sellerID {
		return nil, ErrProductNotFound
	}

	in.ApplyTo(product)
	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	return product, nil
}
