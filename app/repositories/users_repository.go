package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepositoryImpl interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, tx *gorm.DB, userID uint, role models.UserRole) error
	SetActive(ctx context.Context, userID uint, active bool) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepositoryImpl {
	return &userRepository{db}
}

// Create stores a user whose password is already hashed.
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isDuplicate(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Preload("SellerProfile").First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error; err != nil {
		if isDuplicate(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) UpdateRole(ctx context.Context, tx *gorm.DB, userID uint, role models.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role %q", role)
	}
	updates := map[string]interface{}{
		"role":       role,
		"updated_at": time.Now(),
	}
	result := conn(r.db, tx).WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).UpdateColumns(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update role for user %d: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) SetActive(ctx context.Context, userID uint, active bool) error {
	updates := map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).UpdateColumns(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update active flag for user %d: %w", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
