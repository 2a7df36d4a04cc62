package models

import (
	"time"

	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID               uint             `gorm:"primaryKey" json:"id"`
	SellerID         uint             `gorm:"not null;index" json:"seller_id" validate:"required"`
	Seller           *User            `gorm:"foreignKey:SellerID" json:"seller,omitempty" validate:"-"`
	CategoryID       uint             `gorm:"not null;index" json:"category_id" validate:"required"`
	Category         *Category        `gorm:"foreignKey:CategoryID" json:"category,omitempty" validate:"-"`
	Name             string           `gorm:"size:200;not null" json:"name" validate:"required,max=200"`
	Description      string           `gorm:"size:2000;not null" json:"description" validate:"max=2000"`
	Price            decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"price" validate:"decimal=12_2,decimal_gte=0"`
	OriginalPrice    *decimal.Decimal `gorm:"type:decimal(12,2)" json:"original_price,omitempty" validate:"omitempty,decimal=12_2,decimal_gte=0"`
	StockQuantity    int              `gorm:"not null;default:0" json:"stock_quantity" validate:"gte=0"`
	MinOrderQuantity int              `gorm:"not null;default:1" json:"min_order_quantity" validate:"min=1"`
	WeightKg         decimal.Decimal  `gorm:"type:decimal(8,3);not null" json:"weight_kg" validate:"decimal=8_3,decimal_gte=0"`
	Dimensions       map[string]any   `gorm:"serializer:jsonnumber;type:json" json:"dimensions"` // length, width, height in cm
	Images           []string         `gorm:"serializer:json;type:json" json:"images"`
	Specifications   map[string]any   `gorm:"serializer:jsonnumber;type:json" json:"specifications"`
	Tags             []string         `gorm:"serializer:json;type:json" json:"tags"`
	IsActive         bool             `gorm:"not null;index" json:"is_active"`
	IsFeatured       bool             `gorm:"not null;default:false" json:"is_featured"`
	Rating           decimal.Decimal  `gorm:"type:decimal(3,2);not null;default:0" json:"rating" validate:"decimal=3_2,decimal_gte=0,decimal_lte=5"`
	TotalReviews     int              `gorm:"not null;default:0" json:"total_reviews" validate:"gte=0"`
	TotalSold        int              `gorm:"not null;default:0" json:"total_sold" validate:"gte=0"`
	CartItems        []CartItem       `gorm:"foreignKey:ProductID" json:"-" validate:"-"`
	OrderItems       []OrderItem      `gorm:"foreignKey:ProductID" json:"-" validate:"-"`
	Reviews          []ProductReview  `gorm:"foreignKey:ProductID" json:"reviews,omitempty" validate:"-"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Dimensions == nil {
		p.Dimensions = map[string]any{}
	}
	if p.Specifications == nil {
		p.Specifications = map[string]any{}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return validation.Struct(p)
}

// Discounted reports whether the product is priced below its original price.
func (p *Product) Discounted() bool {
	return p.OriginalPrice != nil && p.Price.LessThan(*p.OriginalPrice)
}

// Orderable reports whether qty units may be put in a cart. Stock is only
// checked at checkout.
func (p *Product) Orderable(qty int) bool {
	return p.IsActive && qty >= p.MinOrderQuantity
}

// CanFulfil reports whether qty units may be ordered right now.
func (p *Product) CanFulfil(qty int) bool {
	return p.Orderable(qty) && qty <= p.StockQuantity
}
