package models

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"gorm.io/gorm"
)

// Address is a shipping address owned by a user. At most one address per user
// should be default; AddressRepository keeps that true.
type Address struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id" validate:"required"`
	User        *User     `gorm:"foreignKey:UserID" json:"-" validate:"-"`
	Label       string    `gorm:"size:50;not null" json:"label" validate:"required,max=50"` // Home, Office, ...
	FullAddress string    `gorm:"size:500;not null" json:"full_address" validate:"required,max=500"`
	City        string    `gorm:"size:100;not null" json:"city" validate:"required,max=100"`
	State       string    `gorm:"size:100;not null" json:"state" validate:"required,max=100"`
	PostalCode  string    `gorm:"size:20;not null" json:"postal_code" validate:"required,max=20"`
	Country     string    `gorm:"size:100;not null" json:"country" validate:"required,max=100"`
	IsDefault   bool      `gorm:"not null;default:false" json:"is_default"`
	Orders      []Order   `gorm:"foreignKey:ShippingAddressID" json:"-" validate:"-"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *Address) BeforeSave(tx *gorm.DB) error {
	if a.Country == "" {
		a.Country = DefaultCountry
	}
	return validation.Struct(a)
}
