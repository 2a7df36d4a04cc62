package models

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order totals follow TotalAmount = Subtotal + ShippingFee + TaxAmount - DiscountAmount.
// The schema does not enforce it; CheckoutService computes the fields together.
type Order struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	UserID            uint            `gorm:"not null;index" json:"user_id" validate:"required"`
	User              *User           `gorm:"foreignKey:UserID" json:"-" validate:"-"`
	ShippingAddressID uint            `gorm:"not null;index" json:"shipping_address_id" validate:"required"`
	ShippingAddress   *Address        `gorm:"foreignKey:ShippingAddressID" json:"shipping_address,omitempty" validate:"-"`
	OrderNumber       string          `gorm:"size:50;not null;uniqueIndex" json:"order_number" validate:"required,max=50"`
	Status            OrderStatus     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status" validate:"oneof=pending confirmed processing shipped delivered cancelled returned"`
	Subtotal          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal" validate:"decimal=12_2,decimal_gte=0"`
	ShippingFee       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"shipping_fee" validate:"decimal=12_2,decimal_gte=0"`
	TaxAmount         decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"tax_amount" validate:"decimal=12_2,decimal_gte=0"`
	DiscountAmount    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"discount_amount" validate:"decimal=12_2,decimal_gte=0"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount" validate:"decimal=12_2"`
	PaymentMethod     string          `gorm:"size:50;not null" json:"payment_method" validate:"required,max=50"`
	PaymentStatus     string          `gorm:"size:20;not null;default:'pending'" json:"payment_status" validate:"required,max=20"`
	Notes             *string         `gorm:"size:500" json:"notes,omitempty" validate:"omitempty,max=500"`
	OrderItems        []OrderItem     `gorm:"foreignKey:OrderID" json:"order_items,omitempty" validate:"-"`
	Delivery          *Delivery       `gorm:"foreignKey:OrderID" json:"delivery,omitempty" validate:"-"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (o *Order) BeforeSave(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentStatusPending
	}
	return validation.Struct(o)
}

// ExpectedTotal recomputes the total from the order's components.
func (o *Order) ExpectedTotal() decimal.Decimal {
	return o.Subtotal.Add(o.ShippingFee).Add(o.TaxAmount).Sub(o.DiscountAmount)
}

// Balanced reports whether the stored total matches its components.
func (o *Order) Balanced() bool {
	return o.TotalAmount.Equal(o.ExpectedTotal())
}
