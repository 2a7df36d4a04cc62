package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rakhulsr/go-marketplace/app/configs"
	"github.com/Rakhulsr/go-marketplace/app/db/seeders"
	"github.com/Rakhulsr/go-marketplace/app/models"
	"github.com/Rakhulsr/go-marketplace/app/models/migrations"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Connect opens the database for a command.
type Connect func() (*gorm.DB, error)

// NewCommand builds the marketplace command line. Output goes to w.
func NewCommand(connect Connect, logger *zap.Logger, w io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "marketplace",
		Usage: "Manage the marketplace database",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create or update the database schema",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db.WithContext(ctx)); err != nil {
						return err
					}
					logger.Info("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Fill the database with fake categories, sellers, products and buyers",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "sellers", Value: 3, Usage: "number of sellers"},
					&cli.IntFlag{Name: "buyers", Value: 5, Usage: "number of buyers"},
					&cli.IntFlag{Name: "products", Value: 10, Usage: "products per seller"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db.WithContext(ctx)); err != nil {
						return err
					}
					result, err := seeders.DBSeed(ctx, db, logger, seeders.Options{
						Sellers:           int(c.Int("sellers")),
						Buyers:            int(c.Int("buyers")),
						ProductsPerSeller: int(c.Int("products")),
					})
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "seeded %d categories, %d sellers, %d buyers, %d products\n",
						result.Categories, result.Sellers, result.Buyers, result.Products)
					return nil
				},
			},
			{
				Name:  "categories",
				Usage: "Print the category tree",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					return printCategories(ctx, repositories.NewCategoryRepository(db), w)
				},
			},
			{
				Name:  "summary",
				Usage: "Print row counts and order revenue",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := connect()
					if err != nil {
						return err
					}
					return printSummary(ctx, db, w)
				},
			},
		},
	}
}

// RunCli runs the command line against the configured database.
func RunCli(ctx context.Context, env configs.ENV, logger *zap.Logger, args []string) error {
	connect := func() (*gorm.DB, error) {
		return configs.OpenConnection(env, logger)
	}
	return NewCommand(connect, logger, os.Stdout).Run(ctx, args)
}

func printCategories(ctx context.Context, repo repositories.CategoryRepositoryImpl, w io.Writer) error {
	categories, err := repo.GetAll(ctx)
	if err != nil {
		return err
	}
	names := make(map[uint]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	tree, err := repo.Tree(ctx)
	if err != nil {
		return err
	}

	var walk func(ids []uint, depth int)
	walk = func(ids []uint, depth int) {
		for _, id := range ids {
			fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), names[id])
			walk(tree.Children(id), depth+1)
		}
	}
	walk(tree.Roots(), 0)
	return nil
}

func printSummary(ctx context.Context, db *gorm.DB, w io.Writer) error {
	tables := []struct {
		label string
		model interface{}
	}{
		{"users", &models.User{}},
		{"sellers", &models.SellerProfile{}},
		{"categories", &models.Category{}},
		{"products", &models.Product{}},
		{"orders", &models.Order{}},
		{"reviews", &models.ProductReview{}},
	}
	for _, t := range tables {
		var count int64
		if err := db.WithContext(ctx).Model(t.model).Count(&count).Error; err != nil {
			return err
		}
		fmt.Fprintf(w, "%-12s %d\n", t.label, count)
	}

	var totals []decimal.Decimal
	if err := db.WithContext(ctx).Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Pluck("total_amount", &totals).Error; err != nil {
		return err
	}
	revenue := decimal.Zero
	for _, t := range totals {
		revenue = revenue.Add(t)
	}
	fmt.Fprintf(w, "%-12s %s\n", "revenue", format.Rupiah(revenue))
	return nil
}
