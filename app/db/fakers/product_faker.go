package fakers

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// ProductFaker builds an active product for the seller in the given category.
func ProductFaker(sellerID, categoryID uint) *models.Product {
	name := faker.Word() + " " + faker.Word()
	key := slug.Make(name + "-" + uuid.NewString()[:6])

	numImages := rand.Intn(3) + 1
	images := make([]string, numImages)
	for i := range images {
		images[i] = fmt.Sprintf("/images/products/%s-%d.jpg", key, i+1)
	}

	price := decimal.NewFromFloat(fakePrice()).Round(2)
	product := &models.Product{
		SellerID:         sellerID,
		CategoryID:       categoryID,
		Name:             name,
		Description:      truncate(faker.Paragraph(), 2000),
		Price:            price,
		StockQuantity:    rand.Intn(20) + 1,
		MinOrderQuantity: 1,
		WeightKg:         decimal.NewFromFloat(rand.Float64() * 5).Round(3),
		Dimensions: map[string]any{
			"length": rand.Intn(50) + 1,
			"width":  rand.Intn(50) + 1,
			"height": rand.Intn(50) + 1,
		},
		Images:         images,
		Specifications: map[string]any{"sku": key},
		Tags:           []string{slug.Make(faker.Word()), slug.Make(faker.Word())},
		IsActive:       true,
		IsFeatured:     rand.Intn(5) == 0,
	}
	if rand.Intn(3) == 0 {
		original := price.Mul(decimal.NewFromFloat(1.2)).Round(2)
		product.OriginalPrice = &original
	}
	return product
}

func fakePrice() float64 {
	return precision(rand.Float64()*math.Pow10(rand.Intn(8)), rand.Intn(2)+1)
}

func precision(val float64, pre int) float64 {
	a := math.Pow10(pre)
	return float64(int(val*a)) / a
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
