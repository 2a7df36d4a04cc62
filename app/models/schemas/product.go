package schemas

import (
	"maps"
	"slices"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/validation"
	"github.com/shopspring/decimal"
)

type ProductCreate struct {
	CategoryID       uint             `json:"category_id" validate:"required"`
	Name             string           `json:"name" validate:"required,max=200"`
	Description      string           `json:"description" validate:"max=2000"`
	Price            decimal.Decimal  `json:"price" validate:"decimal=12_2,decimal_gte=0"`
	OriginalPrice    *decimal.Decimal `json:"original_price,omitempty" validate:"omitempty,decimal=12_2,decimal_gte=0"`
	StockQuantity    int              `json:"stock_quantity" validate:"gte=0"`
	MinOrderQuantity int              `json:"min_order_quantity,omitempty" validate:"omitempty,min=1"`
	WeightKg         decimal.Decimal  `json:"weight_kg" validate:"decimal=8_3,decimal_gte=0"`
	Dimensions       map[string]any   `json:"dimensions,omitempty"`
	Images           []string         `json:"images,omitempty"`
	Specifications   map[string]any   `json:"specifications,omitempty"`
	Tags             []string         `json:"tags,omitempty"`
}

func (in *ProductCreate) Validate() error {
	return validation.Struct(in)
}

// ToModel builds an active, unrated product owned by sellerID.
func (in *ProductCreate) ToModel(sellerID uint) *models.Product {
	minQty := in.MinOrderQuantity
	if minQty == 0 {
		minQty = 1
	}
	p := &models.Product{
		SellerID:         sellerID,
		CategoryID:       in.CategoryID,
		Name:             in.Name,
		Description:      in.Description,
		Price:            in.Price,
		StockQuantity:    in.StockQuantity,
		MinOrderQuantity: minQty,
		WeightKg:         in.WeightKg,
		Dimensions:       cloneMap(in.Dimensions),
		Images:           cloneList(in.Images),
		Specifications:   cloneMap(in.Specifications),
		Tags:             cloneList(in.Tags),
		IsActive:         true,
	}
	if in.OriginalPrice != nil {
		op := *in.OriginalPrice
		p.OriginalPrice = &op
	}
	return p
}

// ProductUpdate changes only the fields that are set.
type ProductUpdate struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Description    *string          `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price          *decimal.Decimal `json:"price,omitempty" validate:"omitempty,decimal=12_2,decimal_gte=0"`
	OriginalPrice  *decimal.Decimal `json:"original_price,omitempty" validate:"omitempty,decimal=12_2,decimal_gte=0"`
	StockQuantity  *int             `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	WeightKg       *decimal.Decimal `json:"weight_kg,omitempty" validate:"omitempty,decimal=8_3,decimal_gte=0"`
	Dimensions     map[string]any   `json:"dimensions,omitempty"`
	Images         []string         `json:"images,omitempty"`
	Specifications map[string]any   `json:"specifications,omitempty"`
	Tags           []string         `json:"tags,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

func (in *ProductUpdate) Validate() error {
	return validation.Struct(in)
}

func (in *ProductUpdate) ApplyTo(p *models.Product) {
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.OriginalPrice != nil {
		op := *in.OriginalPrice
		p.OriginalPrice = &op
	}
	if in.StockQuantity != nil {
		p.StockQuantity = *in.StockQuantity
	}
	if in.WeightKg != nil {
		p.WeightKg = *in.WeightKg
	}
	if in.Dimensions != nil {
		p.Dimensions = cloneMap(in.Dimensions)
	}
	if in.Images != nil {
		p.Images = cloneList(in.Images)
	}
	if in.Specifications != nil {
		p.Specifications = cloneMap(in.Specifications)
	}
	if in.Tags != nil {
		p.Tags = cloneList(in.Tags)
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	return maps.Clone(m)
}

func cloneList(l []string) []string {
	if l == nil {
		return []string{}
	}
	return slices.Clone(l)
}
