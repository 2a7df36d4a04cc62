package models

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SellerProfile struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	UserID           uint            `gorm:"not null;uniqueIndex" json:"user_id" validate:"required"`
	User             *User           `gorm:"foreignKey:UserID" json:"-" validate:"-"`
	StoreName        string          `gorm:"size:200;not null" json:"store_name" validate:"required,max=200"`
	StoreDescription *string         `gorm:"size:1000" json:"store_description,omitempty" validate:"omitempty,max=1000"`
	StoreLogoURL     *string         `gorm:"size:500" json:"store_logo_url,omitempty" validate:"omitempty,max=500"`
	BusinessLicense  *string         `gorm:"size:100" json:"business_license,omitempty" validate:"omitempty,max=100"`
	IsVerified       bool            `gorm:"not null;default:false" json:"is_verified"`
	Rating           decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0" json:"rating" validate:"decimal=3_2,decimal_gte=0,decimal_lte=5"`
	TotalSales       int             `gorm:"not null;default:0" json:"total_sales" validate:"gte=0"`
	CreatedAt        time.Time       `json:"created_at"`
}

func (s *SellerProfile) BeforeSave(tx *gorm.DB) error {
	return validation.Struct(s)
}
