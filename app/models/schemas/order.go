package schemas

import (
	"slices"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/shopspring/decimal"
)

type CartItemCreate struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"min=1"`
}

// NewCartItemCreate returns a create shape with the default quantity of one.
func NewCartItemCreate(productID uint) CartItemCreate {
	return CartItemCreate{ProductID: productID, Quantity: 1}
}

func (in *CartItemCreate) Validate() error {
	return validation.Struct(in)
}

func (in *CartItemCreate) ToModel(userID uint) *models.CartItem {
	return &models.CartItem{
		UserID:    userID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
	}
}

type CartItemUpdate struct {
	Quantity int `json:"quantity" validate:"min=1"`
}

func (in *CartItemUpdate) Validate() error {
	return validation.Struct(in)
}

func (in *CartItemUpdate) ApplyTo(ci *models.CartItem) {
	ci.Quantity = in.Quantity
}

type OrderCreate struct {
	ShippingAddressID uint    `json:"shipping_address_id" validate:"required"`
	PaymentMethod     string  `json:"payment_method" validate:"required,max=50"`
	Notes             *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

func (in *OrderCreate) Validate() error {
	return validation.Struct(in)
}

// ToModel builds a pending order with zero amounts; the caller fills the totals.
func (in *OrderCreate) ToModel(userID uint, orderNumber string) *models.Order {
	return &models.Order{
		UserID:            userID,
		ShippingAddressID: in.ShippingAddressID,
		OrderNumber:       orderNumber,
		Status:            models.OrderStatusPending,
		PaymentMethod:     in.PaymentMethod,
		PaymentStatus:     models.PaymentStatusPending,
		Notes:             in.Notes,
	}
}

type DeliveryCreate struct {
	CourierName     string          `json:"courier_name" validate:"required,max=100"`
	PickupAddress   string          `json:"pickup_address" validate:"required,max=500"`
	DeliveryAddress string          `json:"delivery_address" validate:"required,max=500"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee" validate:"decimal=10_2,decimal_gte=0"`
	InsuranceFee    decimal.Decimal `json:"insurance_fee" validate:"decimal=10_2,decimal_gte=0"`
	DeliveryNotes   *string         `json:"delivery_notes,omitempty" validate:"omitempty,max=500"`
}

func (in *DeliveryCreate) Validate() error {
	return validation.Struct(in)
}

func (in *DeliveryCreate) ToModel(orderID uint) *models.Delivery {
	return &models.Delivery{
		OrderID:         orderID,
		CourierName:     in.CourierName,
		Status:          models.DeliveryStatusPending,
		PickupAddress:   in.PickupAddress,
		DeliveryAddress: in.DeliveryAddress,
		DeliveryFee:     in.DeliveryFee,
		InsuranceFee:    in.InsuranceFee,
		DeliveryNotes:   in.DeliveryNotes,
		KomerceResponse: map[string]any{},
	}
}

type ProductReviewCreate struct {
	Rating  int      `json:"rating" validate:"min=1,max=5"`
	Title   *string  `json:"title,omitempty" validate:"omitempty,max=200"`
	Comment *string  `json:"comment,omitempty" validate:"omitempty,max=1000"`
	Images  []string `json:"images,omitempty"`
}

func (in *ProductReviewCreate) Validate() error {
	return validation.Struct(in)
}

func (in *ProductReviewCreate) ToModel(productID, userID uint) *models.ProductReview {
	images := []string{}
	if in.Images != nil {
		images = slices.Clone(in.Images)
	}
	return &models.ProductReview{
		ProductID: productID,
		UserID:    userID,
		Rating:    in.Rating,
		Title:     in.Title,
		Comment:   in.Comment,
		Images:    images,
	}
}
