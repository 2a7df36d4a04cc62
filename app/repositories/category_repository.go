package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	GetAll(ctx context.Context) ([]models.Category, error)
	GetChildren(ctx context.Context, parentID uint) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	SetParent(ctx context.Context, id uint, parentID *uint) error
	Tree(ctx context.Context) (*models.CategoryTree, error)
	Delete(ctx context.Context, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

// Create requires the parent, if any, to exist already. A new row has no
// children so it cannot close a cycle.
func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if category.ParentID != nil {
			exists, err := categoryExists(tx, *category.ParentID)
			if err != nil {
				return err
			}
			if !exists {
				return ErrCategoryNotFound
			}
		}
		if err := tx.Create(category).Error; err != nil {
			if isDuplicate(err) {
				return ErrCategoryNameTaken
			}
			return err
		}
		return nil
	})
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Preload("Children", func(db *gorm.DB) *gorm.DB {
		return db.Order("sort_order, name")
	}).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Order("sort_order, name").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) GetChildren(ctx context.Context, parentID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Where("parent_id = ?", parentID).Order("sort_order, name").Find(&categories).Error
	return categories, err
}

// Update saves the category's own columns. Parent changes go through SetParent.
func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	err := r.db.WithContext(ctx).Model(category).
		Select("name", "description", "image_url", "is_active", "sort_order").
		Updates(category).Error
	if isDuplicate(err) {
		return ErrCategoryNameTaken
	}
	return err
}

// SetParent moves a category under parentID (nil makes it a root). The move is
// rejected when parentID is the category itself or one of its descendants.
func (r *categoryRepository) SetParent(ctx context.Context, id uint, parentID *uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tree, err := loadTree(tx)
		if err != nil {
			return err
		}
		if !tree.Contains(id) {
			return ErrCategoryNotFound
		}
		if parentID != nil && !tree.Contains(*parentID) {
			return ErrCategoryNotFound
		}
		if tree.WouldCycle(id, parentID) {
			return ErrCategoryCycle
		}
		return tx.Model(&models.Category{}).Where("id = ?", id).UpdateColumn("parent_id", parentID).Error
	})
}

func (r *categoryRepository) Tree(ctx context.Context) (*models.CategoryTree, error) {
	return loadTree(r.db.WithContext(ctx))
}

// Delete refuses to orphan children or products.
func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var children, products int64
		if err := tx.Model(&models.Category{}).Where("parent_id = ?", id).Count(&children).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Product{}).Where("category_id = ?", id).Count(&products).Error; err != nil {
			return err
		}
		if children > 0 || products > 0 {
			return ErrCategoryInUse
		}
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete category %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}
		return nil
	})
}

func loadTree(db *gorm.DB) (*models.CategoryTree, error) {
	var rows []models.Category
	if err := db.Select("id", "parent_id", "sort_order").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load category tree: %w", err)
	}
	return models.NewCategoryTree(rows), nil
}

func categoryExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
