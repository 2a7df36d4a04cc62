package models

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"gorm.io/gorm"
)

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id" validate:"required"`
	User      *User     `gorm:"foreignKey:UserID" json:"-" validate:"-"`
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id" validate:"required"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity" validate:"min=1"`
	AddedAt   time.Time `gorm:"autoCreateTime" json:"added_at"`
}

func (ci *CartItem) BeforeSave(tx *gorm.DB) error {
	return validation.Struct(ci)
}
