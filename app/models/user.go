package models

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Email         string         `gorm:"size:255;not null;uniqueIndex" json:"email" validate:"required,max=255,email_pattern"`
	PasswordHash  string         `gorm:"size:255;not null" json:"-" validate:"required,max=255"`
	FullName      string         `gorm:"size:100;not null" json:"full_name" validate:"required,max=100"`
	Phone         *string        `gorm:"size:20" json:"phone,omitempty" validate:"omitempty,max=20"`
	Role          UserRole       `gorm:"type:varchar(20);not null;default:'buyer'" json:"role" validate:"oneof=buyer seller admin"`
	IsActive      bool           `gorm:"not null" json:"is_active"`
	Addresses     []Address      `gorm:"foreignKey:UserID" json:"addresses,omitempty" validate:"-"`
	CartItems     []CartItem     `gorm:"foreignKey:UserID" json:"cart_items,omitempty" validate:"-"`
	Orders        []Order        `gorm:"foreignKey:UserID" json:"orders,omitempty" validate:"-"`
	Products      []Product      `gorm:"foreignKey:SellerID" json:"products,omitempty" validate:"-"`
	SellerProfile *SellerProfile `gorm:"foreignKey:UserID" json:"seller_profile,omitempty" validate:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleBuyer
	}
	return validation.Struct(u)
}

func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}
