package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	ListBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Product, int64, error)
	ListByCategory(ctx context.Context, categoryIDs []uint, limit, offset int) ([]models.Product, int64, error)
	GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error)
	SetFeatured(ctx context.Context, id uint, featured bool) error
	DecrementStock(ctx context.Context, tx *gorm.DB, id uint, qty int) error
	SetRating(ctx context.Context, tx *gorm.DB, id uint, rating decimal.Decimal, totalReviews int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit(clause.Associations).Create(product).Error
}

func (p *productRepository) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	if err := p.db.WithContext(ctx).
		Preload("Seller").
		Preload("Category").
		First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit(clause.Associations).Save(product).Error
}

func (p *productRepository) ListBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if err := p.db.WithContext(ctx).Model(&models.Product{}).Where("seller_id = ?", sellerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := p.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

// ListByCategory returns active products in any of the given categories.
// Pass a category together with its descendants to list a whole subtree.
func (p *productRepository) ListByCategory(ctx context.Context, categoryIDs []uint, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	if len(categoryIDs) == 0 {
		return products, 0, nil
	}

	base := p.db.WithContext(ctx).Model(&models.Product{}).
		Where("category_id IN ? AND is_active = ?", categoryIDs, true)

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) GetFeaturedProducts(ctx context.Context, limit int) ([]models.Product, error) {
	var products []models.Product
	err := p.db.WithContext(ctx).
		Where("is_featured = ? AND is_active = ?", true, true).
		Order("rating DESC, total_sold DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (p *productRepository) SetFeatured(ctx context.Context, id uint, featured bool) error {
	result := p.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{"is_featured": featured, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementStock takes qty units out of stock and adds them to total_sold.
// It fails with ErrInsufficientStock instead of going negative.
func (p *productRepository) DecrementStock(ctx context.Context, tx *gorm.DB, id uint, qty int) error {
	result := conn(p.db, tx).WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		UpdateColumns(map[string]interface{}{
			"stock_quantity": gorm.Expr("stock_quantity - ?", qty),
			"total_sold":     gorm.Expr("total_sold + ?", qty),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to decrement stock for product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: product %d", ErrInsufficientStock, id)
	}
	return nil
}

func (p *productRepository) SetRating(ctx context.Context, tx *gorm.DB, id uint, rating decimal.Decimal, totalReviews int) error {
	if rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
		return fmt.Errorf("product rating %s out of range", rating)
	}
	return conn(p.db, tx).WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"rating":        rating.Round(2),
			"total_reviews": totalReviews,
			"updated_at":    time.Now(),
		}).Error
}
