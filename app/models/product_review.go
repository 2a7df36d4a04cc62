package models

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"gorm.io/gorm"
)

type ProductReview struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	ProductID          uint       `gorm:"not null;index" json:"product_id" validate:"required"`
	Product            *Product   `gorm:"foreignKey:ProductID" json:"-" validate:"-"`
	UserID             uint       `gorm:"not null;index" json:"user_id" validate:"required"`
	User               *User      `gorm:"foreignKey:UserID" json:"-" validate:"-"`
	OrderItemID        *uint      `gorm:"index" json:"order_item_id,omitempty"`
	OrderItem          *OrderItem `gorm:"foreignKey:OrderItemID" json:"-" validate:"-"`
	Rating             int        `gorm:"not null" json:"rating" validate:"min=1,max=5"`
	Title              *string    `gorm:"size:200" json:"title,omitempty" validate:"omitempty,max=200"`
	Comment            *string    `gorm:"size:1000" json:"comment,omitempty" validate:"omitempty,max=1000"`
	Images             []string   `gorm:"serializer:json;type:json" json:"images"`
	IsVerifiedPurchase bool       `gorm:"not null;default:false" json:"is_verified_purchase"`
	HelpfulCount       int        `gorm:"not null;default:0" json:"helpful_count" validate:"gte=0"`
	CreatedAt          time.Time  `json:"created_at"`
}

func (r *ProductReview) BeforeSave(tx *gorm.DB) error {
	if r.Images == nil {
		r.Images = []string{}
	}
	return validation.Struct(r)
}
