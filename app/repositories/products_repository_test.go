package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/schemas"
	"github.com/Rakhulsr/go-marketplace/app/utils/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_DecimalsRoundTrip(t *testing.T) {
	db := testdb.Open(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := newUser(t, db, 1, models.RoleSeller)
	category := newCategory(t, db, "Coffee", nil)

	original := dec("120.50")
	product := &models.Product{
		SellerID:         seller.ID,
		CategoryID:       category.ID,
		Name:             "Kopi Gayo",
		Price:            dec("99.99"),
		OriginalPrice:    &original,
		StockQuantity:    3,
		MinOrderQuantity: 1,
		WeightKg:         dec("0.250"),
		Dimensions:       map[string]any{"length": 10, "width": 2.5},
		Tags:             []string{"coffee", "arabica"},
		IsActive:         true,
	}
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "99.99", got.Price.StringFixed(2))
	assert.True(t, dec("99.99").Equal(got.Price))
	assert.True(t, original.Equal(*got.OriginalPrice))
	assert.True(t, dec("0.25").Equal(got.WeightKg))
	assert.Equal(t, []string{"coffee", "arabica"}, got.Tags)
	assert.Equal(t, json.Number("10"), got.Dimensions["length"])
	assert.Equal(t, json.Number("2.5"), got.Dimensions["width"])
	assert.Equal(t, seller.ID, got.Seller.ID)
	assert.Equal(t, "Coffee", got.Category.Name)
}

func TestProductRepository_RejectsInvalidEntity(t *testing.T) {
	db := testdb.Open(t)
	repo := NewProductRepository(db)

	seller := newUser(t, db, 1, models.RoleSeller)
	category := newCategory(t, db, "Coffee", nil)

	err := repo.Create(context.Background(), &models.Product{
		SellerID:         seller.ID,
		CategoryID:       category.ID,
		Name:             "Too expensive",
		Price:            dec("19999999999.99"),
		MinOrderQuantity: 1,
		WeightKg:         dec("1"),
	})
	assert.Error(t, err)
}

func TestProductRepository_DecrementStock(t *testing.T) {
	db := testdb.Open(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := newUser(t, db, 1, models.RoleSeller)
	category := newCategory(t, db, "Coffee", nil)
	product := newProduct(t, db, seller.ID, category.ID, "10.00", 5)

	require.NoError(t, repo.DecrementStock(ctx, nil, product.ID, 3))
	assert.ErrorIs(t, repo.DecrementStock(ctx, nil, product.ID, 3), ErrInsufficientStock)

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.StockQuantity)
	assert.Equal(t, 3, got.TotalSold)
}

func TestProductRepository_ListByCategorySubtree(t *testing.T) {
	db := testdb.Open(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := newUser(t, db, 1, models.RoleSeller)
	root := newCategory(t, db, "Electronics", nil)
	phones := newCategory(t, db, "Phones", &root.ID)
	other := newCategory(t, db, "Books", nil)

	newProduct(t, db, seller.ID, root.ID, "1.00", 1)
	newProduct(t, db, seller.ID, phones.ID, "2.00", 1)
	newProduct(t, db, seller.ID, other.ID, "3.00", 1)
	hidden := newProduct(t, db, seller.ID, phones.ID, "4.00", 1)
	require.NoError(t, db.Model(hidden).UpdateColumn("is_active", false).Error)

	products, total, err := repo.ListByCategory(ctx, []uint{root.ID, phones.ID}, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, products, 2)

	products, total, err = repo.ListByCategory(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, products)
}

func TestProductRepository_SetRating(t *testing.T) {
	db := testdb.Open(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := newUser(t, db, 1, models.RoleSeller)
	category := newCategory(t, db, "Coffee", nil)
	product := newProduct(t, db, seller.ID, category.ID, "10.00", 5)

	require.NoError(t, repo.SetRating(ctx, nil, product.ID, dec("4.33"), 3))
	assert.Error(t, repo.SetRating(ctx, nil, product.ID, dec("5.5"), 3))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, dec("4.33").Equal(got.Rating))
	assert.Equal(t, 3, got.TotalReviews)
}

func TestProductRepository_Featured(t *testing.T) {
	db := testdb.Open(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := newUser(t, db, 1, models.RoleSeller)
	category := newCategory(t, db, "Coffee", nil)
	low := newProduct(t, db, seller.ID, category.ID, "1.00", 1)
	high := newProduct(t, db, seller.ID, category.ID, "2.00", 1)
	newProduct(t, db, seller.ID, category.ID, "3.00", 1)

	require.NoError(t, repo.SetFeatured(ctx, low.ID, true))
	require.NoError(t, repo.SetFeatured(ctx, high.ID, true))
	require.NoError(t, repo.SetRating(ctx, nil, high.ID, dec("4.50"), 2))
	assert.ErrorIs(t, repo.SetFeatured(ctx, 999, true), ErrNotFound)

	featured, err := repo.GetFeaturedProducts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, featured, 2)
	assert.Equal(t, high.ID, featured[0].ID)
	assert.Equal(t, low.ID, featured[1].ID)
}

func TestProductRepository_SpecificationsKeepWideIntegers(t *testing.T) {
	db := testdb.Open(t)
	repo := NewProductRepository(db)
	ctx := context.Background()

	seller := newUser(t, db, 1, models.RoleSeller)
	category := newCategory(t, db, "Coffee", nil)

	in := schemas.ProductCreate{
		CategoryID:       category.ID,
		Name:             "Kopi Toraja",
		Price:            dec("50.00"),
		StockQuantity:    1,
		MinOrderQuantity: 1,
		WeightKg:         dec("0.5"),
		Specifications:   map[string]any{"sku_id": int64(9007199254740993)},
	}
	require.NoError(t, in.Validate())
	product := in.ToModel(seller.ID)
	require.NoError(t, repo.Create(ctx, product))

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	skuID, ok := got.Specifications["sku_id"].(json.Number)
	require.True(t, ok, "got %T", got.Specifications["sku_id"])
	n, err := skuID.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), n)
}
