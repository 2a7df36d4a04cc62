package models

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Delivery is the single shipment of an order. KomerceResponse holds the raw
// payload returned by the delivery provider and is never interpreted here.
type Delivery struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	OrderID           uint            `gorm:"not null;uniqueIndex" json:"order_id" validate:"required"`
	Order             *Order          `gorm:"foreignKey:OrderID" json:"-" validate:"-"`
	KomerceDeliveryID *string         `gorm:"size:100" json:"komerce_delivery_id,omitempty" validate:"omitempty,max=100"`
	CourierName       string          `gorm:"size:100;not null" json:"courier_name" validate:"required,max=100"`
	CourierPhone      *string         `gorm:"size:20" json:"courier_phone,omitempty" validate:"omitempty,max=20"`
	TrackingNumber    *string         `gorm:"size:100" json:"tracking_number,omitempty" validate:"omitempty,max=100"`
	Status            DeliveryStatus  `gorm:"type:varchar(20);not null;default:'pending'" json:"status" validate:"oneof=pending picked_up in_transit out_for_delivery delivered failed returned"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ActualDelivery    *time.Time      `json:"actual_delivery,omitempty"`
	PickupAddress     string          `gorm:"size:500;not null" json:"pickup_address" validate:"required,max=500"`
	DeliveryAddress   string          `gorm:"size:500;not null" json:"delivery_address" validate:"required,max=500"`
	DeliveryFee       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"delivery_fee" validate:"decimal=10_2,decimal_gte=0"`
	InsuranceFee      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"insurance_fee" validate:"decimal=10_2,decimal_gte=0"`
	DeliveryNotes     *string         `gorm:"size:500" json:"delivery_notes,omitempty" validate:"omitempty,max=500"`
	KomerceResponse   map[string]any  `gorm:"serializer:jsonnumber;type:json" json:"komerce_response"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func (d *Delivery) BeforeSave(tx *gorm.DB) error {
	if d.Status == "" {
		d.Status = DeliveryStatusPending
	}
	if d.KomerceResponse == nil {
		d.KomerceResponse = map[string]any{}
	}
	return validation.Struct(d)
}

// TotalFee is the delivery fee plus insurance.
func (d *Delivery) TotalFee() decimal.Decimal {
	return d.DeliveryFee.Add(d.InsuranceFee)
}
