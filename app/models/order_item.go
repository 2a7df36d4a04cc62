package models

import (
	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem keeps a copy of the seller id so sellers can list their sales
// without joining products.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"not null;index" json:"order_id"`
	Order      *Order          `gorm:"foreignKey:OrderID" json:"-" validate:"-"`
	ProductID  uint            `gorm:"not null;index" json:"product_id" validate:"required"`
	Product    *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty" validate:"-"`
	Quantity   int             `gorm:"not null" json:"quantity" validate:"min=1"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price" validate:"decimal=12_2,decimal_gte=0"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price" validate:"decimal=12_2,decimal_gte=0"`
	SellerID   uint            `gorm:"not null;index" json:"seller_id" validate:"required"`
	Seller     *User           `gorm:"foreignKey:SellerID" json:"-" validate:"-"`
}

func (oi *OrderItem) BeforeSave(tx *gorm.DB) error {
	return validation.Struct(oi)
}

// Balanced reports whether TotalPrice equals Quantity x UnitPrice.
func (oi *OrderItem) Balanced() bool {
	return oi.TotalPrice.Equal(oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity))))
}
