package seeders

import (
	"context"
	"fmt"
	"sort"

	"github.com/Rakhulsr/go-marketplace/app/db/fakers"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

type Options struct {
	Sellers           int
	Buyers            int
	ProductsPerSeller int
}

type Result struct {
	Categories int
	Sellers    int
	Buyers     int
	Products   int
}

// DBSeed fills an empty database with a category tree, sellers with their
// products, and buyers with a default address.
func DBSeed(ctx context.Context, db *gorm.DB, logger *zap.Logger, opts Options) (*Result, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	userRepo := repositories.NewUserRepository(db)
	sellerRepo := repositories.NewSellerProfileRepository(db)
	addressRepo := repositories.NewGormAddressRepository(db, logger)
	categoryRepo := repositories.NewCategoryRepository(db)
	productRepo := repositories.NewProductRepository(db)

	result := &Result{}

	leaves, err := seedCategories(ctx, categoryRepo, result)
	if err != nil {
		return nil, err
	}

	for i := 0; i < opts.Sellers; i++ {
		seller := fakers.UserFaker(models.RoleSeller, string(hash))
		if err := userRepo.Create(ctx, seller); err != nil {
			return nil, fmt.Errorf("failed to seed seller: %w", err)
		}
		if err := sellerRepo.Create(ctx, nil, fakers.SellerProfileFaker(seller.ID)); err != nil {
			return nil, fmt.Errorf("failed to seed seller profile: %w", err)
		}
		result.Sellers++

		for j := 0; j < opts.ProductsPerSeller; j++ {
			product := fakers.ProductFaker(seller.ID, leaves[(i+j)%len(leaves)])
			if err := productRepo.Create(ctx, product); err != nil {
				return nil, fmt.Errorf("failed to seed product: %w", err)
			}
			logger.Debug("Seeded product",
				zap.String("name", product.Name),
				zap.String("price", format.Rupiah(product.Price)),
				zap.Bool("discounted", product.Discounted()),
			)
			result.Products++
		}
	}

	for i := 0; i < opts.Buyers; i++ {
		buyer := fakers.UserFaker(models.RoleBuyer, string(hash))
		if err := userRepo.Create(ctx, buyer); err != nil {
			return nil, fmt.Errorf("failed to seed buyer: %w", err)
		}
		if err := addressRepo.CreateAddress(ctx, fakers.AddressFaker(buyer.ID)); err != nil {
			return nil, fmt.Errorf("failed to seed address: %w", err)
		}
		result.Buyers++
	}

	logger.Info("Database seeded",
		zap.Int("categories", result.Categories),
		zap.Int("sellers", result.Sellers),
		zap.Int("buyers", result.Buyers),
		zap.Int("products", result.Products),
	)
	return result, nil
}

// seedCategories creates the category tree and returns the leaf ids. Existing
// categories are reused.
func seedCategories(ctx context.Context, repo repositories.CategoryRepositoryImpl, result *Result) ([]uint, error) {
	roots := make([]string, 0, len(fakers.CategoryNames))
	for name := range fakers.CategoryNames {
		roots = append(roots, name)
	}
	sort.Strings(roots)

	var leaves []uint
	for i, name := range roots {
		root, err := findOrCreateCategory(ctx, repo, name, nil, i, result)
		if err != nil {
			return nil, err
		}
		for j, childName := range fakers.CategoryNames[name] {
			child, err := findOrCreateCategory(ctx, repo, childName, &root.ID, j, result)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, child.ID)
		}
	}
	return leaves, nil
}

func findOrCreateCategory(ctx context.Context, repo repositories.CategoryRepositoryImpl, name string, parentID *uint, sortOrder int, result *Result) (*models.Category, error) {
	existing, err := repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	category := &models.Category{Name: name, ParentID: parentID, IsActive: true, SortOrder: sortOrder}
	if err := repo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to seed category %q: %w", name, err)
	}
	result.Categories++
	return category, nil
}
